package config

import "time"

// Config holds runtime settings for the climbing client.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - RequestTimeout: global per-request timeout on the HTTP client.
//   - SessionPath: path of the sqlite file holding the persisted session.
//   - MetricsAddr: optional listen address for the prometheus endpoint
//     (empty disables it).
//   - LogLevel: debug | info | warn | error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionPath    string
	MetricsAddr    string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.SessionPath = "session.db"
	c.MetricsAddr = ""
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file
// (if -c/-config points at one), and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
