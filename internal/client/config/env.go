package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client.
const (
	envAPIBaseURL     = "API_BASE_URL"
	envRequestTimeout = "REQUEST_TIMEOUT"
	envSessionPath    = "SESSION_PATH"
	envMetricsAddr    = "METRICS_ADDR"
	envLogLevel       = "LOG_LEVEL"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first (missing file is
// fine); real environment variables win over .env entries, which is
// godotenv's default behavior.
//
// REQUEST_TIMEOUT accepts a Go duration string ("10s", "1m30s"). A value
// that does not parse is ignored, keeping the previous stage's setting.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envSessionPath); v != "" {
		cfg.SessionPath = v
	}
	if v := os.Getenv(envMetricsAddr); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
