package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-s remote gateway base URL
//	-d local cache database path
//	-t bearer token
//	-c/-config json file path with configs
//	-persona default assistant persona
//	-strict restrict answers to uploaded sources
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-upload-bytes client-side upload size ceiling
//	-stale-after file cache staleness threshold
//	-revalidate-interval background file refresh interval
func ParseFlags() *ClientConfig {
	var serverURL string
	var databaseDSN string
	var token string
	var jsonConfigPath string
	var persona string
	var strictMode bool
	var requestTimeout time.Duration
	var maxUploadBytes int64
	var staleAfter time.Duration
	var revalidateInterval time.Duration

	flag.StringVar(&serverURL, "s", "", "Remote gateway base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database path")
	flag.StringVar(&token, "t", "", "Bearer token")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&persona, "persona", "", "Default assistant persona")
	flag.BoolVar(&strictMode, "strict", false, "Restrict answers to uploaded sources")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Int64Var(&maxUploadBytes, "max-upload-bytes", 0, "Upload size ceiling in bytes")
	flag.DurationVar(&staleAfter, "stale-after", 0, "File cache staleness threshold")
	flag.DurationVar(&revalidateInterval, "revalidate-interval", 0, "Background file refresh interval")

	flag.Parse()

	return &ClientConfig{
		App: App{
			Token:      token,
			Persona:    persona,
			StrictMode: strictMode,
		},
		Adapter: Adapter{
			BaseURL:        serverURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Files: Files{
			MaxUploadBytes: maxUploadBytes,
			StaleAfter:     staleAfter,
		},
		Workers: Workers{
			RevalidateInterval: revalidateInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
