package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearServerEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", "test")
	t.Setenv("ENV_PATH", "")
	for _, k := range []string{"PORT", "USE_HTTP2", "CORS_ORIGINS", "BODY_LIMIT", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearServerEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.False(t, cfg.UseHttp2)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	assert.Equal(t, "10M", cfg.BodyLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("USE_HTTP2", "true")
	t.Setenv("CORS_ORIGINS", " http://a.example , ,http://b.example")
	t.Setenv("BODY_LIMIT", "2M")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.True(t, cfg.UseHttp2)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CorsOrigins)
	assert.Equal(t, "2M", cfg.BodyLimit)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	clearServerEnv(t)

	for _, port := range []string{"abc", "0", "70000"} {
		t.Setenv("PORT", port)
		_, err := LoadConfig()
		assert.Error(t, err, "port %s", port)
	}
}

func TestLoadConfig_InvalidShutdownTimeout(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}
