package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServer_Defaults(t *testing.T) {
	t.Setenv("LUMINA_JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := LoadServer()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "lumina-server.db", cfg.DBPath)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 720*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, "@every 1h", cfg.TokenCleanupCron)
	assert.NoError(t, cfg.Validate())

	// Секрет удаляется из окружения после чтения
	_, ok := os.LookupEnv("LUMINA_JWT_SECRET")
	assert.False(t, ok)
}

func TestLoadServer_Overrides(t *testing.T) {
	t.Setenv("LUMINA_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("LUMINA_ACCESS_TOKEN_TTL", "5m")
	t.Setenv("LUMINA_RATE_LIMIT", "7")

	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 7, cfg.RateLimit)
}

func TestLoadServer_InvalidDuration(t *testing.T) {
	t.Setenv("LUMINA_REFRESH_TOKEN_TTL", "forever")

	_, err := LoadServer()
	assert.Error(t, err)
}

func TestServer_Validate(t *testing.T) {
	valid := Server{
		JWTSecret:       "0123456789abcdef0123456789abcdef",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
		RateLimit:       1,
		RateLimitWindow: time.Second,
	}
	assert.NoError(t, valid.Validate())

	short := valid
	short.JWTSecret = "secret"
	assert.Error(t, short.Validate())

	noTTL := valid
	noTTL.AccessTokenTTL = 0
	assert.Error(t, noTTL.Validate())

	noLimit := valid
	noLimit.RateLimit = 0
	assert.Error(t, noLimit.Validate())
}

func TestLoadClient_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LUMINA_DB=from-file.db\nLUMINA_GENERATE_TIMEOUT=5s\n"), 0600))

	// Переменная окружения важнее .env
	t.Setenv("LUMINA_SERVER_URL", "https://lumina.example.com")

	// t.Setenv вернет окружение после теста, godotenv пишет прямо в os.Environ
	t.Setenv("LUMINA_DB", "")
	require.NoError(t, os.Unsetenv("LUMINA_DB"))
	t.Setenv("LUMINA_GENERATE_TIMEOUT", "")
	require.NoError(t, os.Unsetenv("LUMINA_GENERATE_TIMEOUT"))

	cfg, err := LoadClient(envFile, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "from-file.db", cfg.DBPath)
	assert.Equal(t, 5*time.Second, cfg.GenerateTimeout)
	assert.Equal(t, "https://lumina.example.com", cfg.ServerURL)
	assert.Equal(t, "gemini-2.5-flash-image", cfg.ImageModel)
	assert.Equal(t, "gemini-3-flash-preview", cfg.PlannerModel)
}

func TestLoadClient_BrokenDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LUMINA_LOG_LEVEL=debug\n!broken line\n"), 0600))

	_, err := LoadClient(envFile)
	assert.Error(t, err)
}
