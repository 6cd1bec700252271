package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
user = "rental"
password = "secret"
dbname = "rental"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, AuthModeHeader, cfg.Auth.Mode)
	assert.Equal(t, "X-User-ID", cfg.Auth.HeaderName)
	assert.False(t, cfg.Booking.ReserveNights)
	assert.True(t, cfg.Availability.Strict())
	assert.Equal(t, 90, cfg.Availability.DefaultLimit)
	assert.Equal(t, 100, cfg.Availability.MaxLimit)
	assert.Equal(t, 50, cfg.Listing.DefaultLimit)
	assert.Equal(t, 100, cfg.Listing.MaxLimit)
	assert.Equal(t, "host=localhost port=5432 user=rental password=secret dbname=rental sslmode=disable", cfg.Database.DSN())
}

func TestLoad_Sections(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[booking]
reserve_nights = true

[availability]
strict_calendar_dates = false
`))
	require.NoError(t, err)

	assert.True(t, cfg.Booking.ReserveNights)
	assert.False(t, cfg.Availability.Strict())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := Load(writeConfig(t, minimalConfig+`
[auth]
mode = "jwt"
`))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "s3cr3t", cfg.Auth.JWTSecret)
}

func TestLoad_InvalidHTTPPortEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load(writeConfig(t, minimalConfig))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("jwt without secret", func(t *testing.T) {
		_, err := Load(writeConfig(t, minimalConfig+`
[auth]
mode = "jwt"
`))
		assert.ErrorContains(t, err, "jwt_secret")
	})

	t.Run("unknown auth mode", func(t *testing.T) {
		_, err := Load(writeConfig(t, minimalConfig+`
[auth]
mode = "session"
`))
		assert.ErrorContains(t, err, "auth.mode")
	})

	t.Run("default limit above max", func(t *testing.T) {
		_, err := Load(writeConfig(t, minimalConfig+`
[listing]
default_limit = 500
`))
		assert.ErrorContains(t, err, "listing.default_limit")
	})

	t.Run("missing database host", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
[database]
dbname = "rental"
`))
		assert.ErrorContains(t, err, "database.host")
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
