package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "HOST", "PORT", "CORS_ALLOWED_ORIGINS", "MAX_BODY_BYTES", "SHUTDOWN_TIMEOUT", "SEED_ADMIN_EMAIL", "SEED_ADMIN_PASSWORD", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "0.0.0.0:5005", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "admin@portal.com", cfg.SeedAdmin.Email)
	assert.Equal(t, "adminpassword", cfg.SeedAdmin.Password)
	assert.Empty(t, cfg.OTLPEndpoint)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("SEED_ADMIN_EMAIL", "root@corp.example")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "root@corp.example", cfg.SeedAdmin.Email)
}

func TestParseInvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Parse()
	assert.Error(t, err)

	t.Setenv("PORT", "70000")

	_, err = Parse()
	assert.Error(t, err)
}
