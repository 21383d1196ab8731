package config

import (
	"time"
)

// ClientConfig is the top-level configuration container for the samvaad
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// App holds application-level settings such as the bearer token and
	// default generation parameters.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the remote gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistent cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Files holds upload and revalidation policy for source files.
	Files Files `envPrefix:"FILES_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level client settings.
type App struct {
	// Token is the bearer token attached to every gateway request. Its JWT
	// subject also scopes all local cache reads and writes to one user.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Persona is the default assistant persona sent with every message.
	// Env: APP_PERSONA
	Persona string `env:"PERSONA"`

	// StrictMode restricts assistant answers to uploaded sources.
	// Env: APP_STRICT_MODE
	StrictMode bool `env:"STRICT_MODE"`
}

// Adapter holds network settings used by the client transport layer.
type Adapter struct {
	// BaseURL is the remote gateway endpoint (e.g. "https://api.example.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local SQLite cache settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local cache database.
type DB struct {
	// DSN is the SQLite file path used for the local cache
	// (e.g. "~/.samvaad/cache.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds upload and staleness policy for the file synchronization unit.
type Files struct {
	// MaxUploadBytes is the client-side upload size ceiling. Candidates
	// larger than this are rejected before any hashing or network work.
	// Env: FILES_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`

	// StaleAfter is the age after the last full sync beyond which cached
	// file rows are considered stale by RefreshIfStale callers.
	// Env: FILES_STALE_AFTER
	StaleAfter time.Duration `env:"STALE_AFTER"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RevalidateInterval defines how often the background revalidation job
	// refreshes the cached file list.
	// Env: WORKERS_REVALIDATE_INTERVAL
	RevalidateInterval time.Duration `env:"REVALIDATE_INTERVAL"`
}

// Defaults applied after merging when the corresponding fields are unset.
const (
	DefaultRequestTimeout     = 30 * time.Second
	DefaultMaxUploadBytes     = 32 << 20
	DefaultStaleAfter         = 10 * time.Minute
	DefaultRevalidateInterval = 5 * time.Minute
)

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *ClientConfig or an error if any source fails to
// load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (c *ClientConfig) applyDefaults() {
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if c.Files.MaxUploadBytes <= 0 {
		c.Files.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.Files.StaleAfter <= 0 {
		c.Files.StaleAfter = DefaultStaleAfter
	}
	if c.Workers.RevalidateInterval <= 0 {
		c.Workers.RevalidateInterval = DefaultRevalidateInterval
	}
}
