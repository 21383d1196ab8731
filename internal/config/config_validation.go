package config

// validate checks that the merged configuration carries everything the
// client cannot run without. Defaults have already been applied, so only
// fields with no sensible fallback are checked here.
func (c *ClientConfig) validate() error {
	if c.Adapter.BaseURL == "" {
		return ErrNoBaseURL
	}
	if c.Storage.DB.DSN == "" {
		return ErrNoDSN
	}

	return nil
}
