package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "local", cfg.Content.Backend)
	assert.Equal(t, "data/portfolio_data.json", cfg.Content.DataFile)
	assert.Equal(t, "local", cfg.Auth.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_OverridesAndOriginSplit(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("CONTENT_BACKEND", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "postgres", cfg.Content.Backend)
	assert.Contains(t, cfg.Content.DB.DSN(), "host=db.internal")
	assert.Contains(t, cfg.Content.DB.DSN(), "port=5433")
}

func TestLoad_InvalidBackends(t *testing.T) {
	t.Setenv("CONTENT_BACKEND", "mysql")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_FirebaseRequiresCredentials(t *testing.T) {
	t.Setenv("AUTH_BACKEND", "firebase")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("FIREBASE_CREDENTIALS_PATH", "creds.json")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "firebase", cfg.Auth.Backend)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Content.DB.Port)
}
