// Package config reads tool settings from the environment.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/moorhawk/datapoint/internal/keyfile"
)

// Config holds the settings shared by the command-line tools, populated from
// environment variables.
type Config struct {
	APIKey      string
	BaseURL     string
	HTTPTimeout time.Duration
	LogLevel    string
}

// Load reads configuration from a .env file (if present) and the
// environment, applying defaults where unset. The API key comes from
// DATAPOINT_API_KEY, or from the file named by DATAPOINT_API_KEY_FILE.
func Load() (*Config, error) {
	// A missing .env file is fine; real env vars take precedence anyway.
	_ = godotenv.Load()

	key := os.Getenv("DATAPOINT_API_KEY")
	if key == "" {
		if path := os.Getenv("DATAPOINT_API_KEY_FILE"); path != "" {
			var err error
			key, err = keyfile.Load(path)
			if err != nil {
				return nil, err
			}
		}
	}
	if key == "" {
		return nil, errors.New("DATAPOINT_API_KEY or DATAPOINT_API_KEY_FILE is required")
	}

	timeoutStr := envOrDefault("DATAPOINT_HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid DATAPOINT_HTTP_TIMEOUT")
	}

	return &Config{
		APIKey:      key,
		BaseURL:     envOrDefault("DATAPOINT_BASE_URL", ""),
		HTTPTimeout: timeout,
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
	}, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
