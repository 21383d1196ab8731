package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON configs can carry human-readable
// values like "30s" or "5m".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration value")
	}
}

type clientJSONConfig struct {
	App struct {
		Token      string `json:"token"`
		Persona    string `json:"persona"`
		StrictMode bool   `json:"strict_mode"`
	} `json:"app,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Files struct {
		MaxUploadBytes int64    `json:"max_upload_bytes"`
		StaleAfter     Duration `json:"stale_after"`
	} `json:"files,omitempty"`

	Workers struct {
		RevalidateInterval Duration `json:"revalidate_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg clientJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &ClientConfig{
		App: App{
			Token:      jsonCfg.App.Token,
			Persona:    jsonCfg.App.Persona,
			StrictMode: jsonCfg.App.StrictMode,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Files: Files{
			MaxUploadBytes: jsonCfg.Files.MaxUploadBytes,
			StaleAfter:     time.Duration(jsonCfg.Files.StaleAfter),
		},
		Workers: Workers{
			RevalidateInterval: time.Duration(jsonCfg.Workers.RevalidateInterval),
		},
	}

	return cfg, nil
}
