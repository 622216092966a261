package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5000/api", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "session.db", c.SessionPath)
	assert.Equal(t, "", c.MetricsAddr)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv(envAPIBaseURL, "http://api.example.com/api")
	t.Setenv(envRequestTimeout, "25s")
	t.Setenv(envLogLevel, "debug")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://api.example.com/api", c.APIBaseURL)
	assert.Equal(t, 25*time.Second, c.RequestTimeout)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "session.db", c.SessionPath, "untouched fields keep defaults")
}

func TestParseEnv_BadTimeoutIgnored(t *testing.T) {
	t.Setenv(envRequestTimeout, "not-a-duration")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}
