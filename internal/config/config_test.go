package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMergesFileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 6432
dbname = "calendar"

[rental_api]
url = "http://backend:8080/api/v1"
timeout = 3

[calendar]
location = "Europe/Moscow"
`)
	t.Setenv("CALENDAR_DATABASE_PASSWORD", "secret")
	t.Setenv("CALENDAR_RENTAL_API_TIMEOUT", "7")
	t.Setenv("CALENDAR_RATE_LIMIT_TRUST_PROXY", "true")
	t.Setenv("CALENDAR_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 7, cfg.RentalAPI.Timeout)
	assert.Equal(t, "http://backend:8080/api/v1", cfg.RentalAPI.URL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.RateLimit.TrustProxy)
	assert.Equal(t, "host=db port=6432 user=postgres password=secret dbname=calendar sslmode=disable", cfg.Database.DSN())

	loc, err := cfg.Calendar.TimeLocation()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	loc, err := cfg.Calendar.TimeLocation()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	assert.ErrorIs(t, err, ErrLoad)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "database host", mutate: func(c *Config) { c.Database.Host = "" }},
		{name: "rental api url", mutate: func(c *Config) { c.RentalAPI.URL = "" }},
		{name: "rental api timeout", mutate: func(c *Config) { c.RentalAPI.Timeout = 0 }},
		{name: "location", mutate: func(c *Config) { c.Calendar.Location = "Mars/Olympus" }},
		{name: "rate limit", mutate: func(c *Config) { c.RateLimit.Burst = 0 }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
