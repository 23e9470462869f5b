package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tj/assert"
)

var testConfig = []byte(`
geocoding:
  url: http://geo.test/v1/search
  language: en
openmeteo:
  url: http://forecast.test/v1/forecast
  forecastDays: 7
  timeout: 5s
cache:
  size: 16
  ttl: 10m
  precision: 2
ratelimit:
  rps: 2
  burst: 1
location:
  default:
    name: New York
    latitude: 40.7128
    longitude: -74.0060
  device: none
server:
  port: 8080
  origin: "*"
log:
  level: info
`)

func TestParse(t *testing.T) {
	cfg, err := Parse(testConfig)
	assert.Nil(t, err)

	assert.Equal(t, "http://geo.test/v1/search", cfg.Geocoding.URL)
	assert.Equal(t, 5*time.Second, cfg.OpenMeteo.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 2, cfg.Cache.Precision)
	assert.Equal(t, "New York", cfg.Location.Default.Location().DisplayName)
	assert.Equal(t, -74.0060, cfg.Location.Default.Coordinate().Longitude)
	assert.Nil(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	err := os.WriteFile(path, []byte("cache:\n  size: 4\nserver:\n  port: 9000\n"), 0o600)
	assert.Nil(t, err)

	t.Setenv("WEATHERDASH_ORIGIN", "http://localhost:5173")
	t.Setenv("WEATHERDASH_LOG_LEVEL", "debug")

	cfg, err := Load(testConfig, path)
	assert.Nil(t, err)

	assert.Equal(t, 4, cfg.Cache.Size)
	assert.Equal(t, 2, cfg.Cache.Precision)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "http://localhost:5173", cfg.Server.Origin)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadBadPort(t *testing.T) {
	t.Setenv("WEATHERDASH_PORT", "eighty")

	_, err := Load(testConfig, "")
	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "zero cache size", modify: func(c *Config) { c.Cache.Size = 0 }},
		{name: "negative precision", modify: func(c *Config) { c.Cache.Precision = -1 }},
		{name: "no forecast days", modify: func(c *Config) { c.OpenMeteo.ForecastDays = 0 }},
		{name: "default out of range", modify: func(c *Config) { c.Location.Default.Latitude = 91 }},
		{name: "unknown device", modify: func(c *Config) { c.Location.Device = "gps" }},
		{name: "static out of range", modify: func(c *Config) {
			c.Location.Device = DeviceStatic
			c.Location.Static = Place{Latitude: 0, Longitude: 200}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse(testConfig)
			assert.Nil(t, err)

			tc.modify(cfg)
			assert.NotNil(t, cfg.Validate())
		})
	}
}
