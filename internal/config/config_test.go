package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"genefit/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"PORT", "DB_DSN", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"AUTH_MODE", "JWT_SECRET", "JWT_ISSUER", "AUTH_BASE_URL", "AUTH_API_KEY",
	"REDIS_URL", "RATE_LIMIT", "RATE_LIMIT_WINDOW",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(logger.Nop(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.DBDSN)
	assert.Equal(t, AuthDev, cfg.Auth.Mode)
	assert.Equal(t, logger.Info, cfg.Log.Level)
	assert.Equal(t, logger.FormatText, cfg.Log.Format)
	assert.Equal(t, "genefit", cfg.Log.App)
	assert.Equal(t, 120, cfg.RateLimit.Limit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"PORT=9090\nAUTH_MODE=jwt\nJWT_SECRET=s3cret\nRATE_LIMIT=5\nRATE_LIMIT_WINDOW=30s\nLOG_FORMAT=json\n",
	), 0o600))

	cfg, err := Load(logger.Nop(), path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, AuthJWT, cfg.Auth.Mode)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 5, cfg.RateLimit.Limit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, logger.FormatJSON, cfg.Log.Format)
}

func TestLoad_ProcessEnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\n"), 0o600))

	cfg, err := Load(logger.Nop(), path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"jwt without secret": {"AUTH_MODE": "jwt"},
		"remote without url": {"AUTH_MODE": "remote", "AUTH_API_KEY": "k"},
		"unknown auth mode":  {"AUTH_MODE": "magic"},
		"bad rate limit":     {"RATE_LIMIT": "-1"},
		"bad window":         {"RATE_LIMIT_WINDOW": "soon"},
		"bad port":           {"PORT": "http"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load(logger.Nop(), filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
