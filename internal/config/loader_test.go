package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearProviderKeys(t *testing.T) {
	t.Helper()
	t.Setenv("DEEPSEEK_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("JWT_SECRET", "")
}

func TestLoad_Defaults(t *testing.T) {
	clearProviderKeys(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout())
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "chatfuture", cfg.Storage.MongoDatabase)
	assert.Equal(t, ProviderDeepSeek, cfg.AI.Provider)
	assert.Equal(t, "https://api.deepseek.com/v1", cfg.AI.BaseURL)
	assert.Equal(t, "deepseek-r1-0528", cfg.AI.Model)
	assert.InDelta(t, 0.7, cfg.AI.Temperature, 1e-6)
	assert.Equal(t, 2000, cfg.AI.MaxTokens)
	assert.False(t, cfg.AI.IsEnabled())
	assert.NotEmpty(t, cfg.Auth.JWTSecret)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearProviderKeys(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
storage:
  backend: sqlite
  sqlite_dir: /tmp/chatfuture
ai:
  provider: openai
log:
  level: debug
  format: console
`), 0600))

	t.Setenv("CHATFUTURE_SERVER_PORT", "9100")
	t.Setenv("CHATFUTURE_AI_API_KEY", "sk-test")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/chatfuture", cfg.Storage.SQLiteDir)
	assert.Equal(t, "https://api.openai.com/v1", cfg.AI.BaseURL)
	assert.Equal(t, "gpt-3.5-turbo", cfg.AI.Model)
	assert.True(t, cfg.AI.IsEnabled())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ProviderKeyFromEnvironment(t *testing.T) {
	clearProviderKeys(t)
	t.Setenv("DEEPSEEK_API_KEY", "ds-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ds-key", cfg.AI.APIKey)
}

func TestLoad_RedisAddrSchemeStripped(t *testing.T) {
	clearProviderKeys(t)
	t.Setenv("CHATFUTURE_STORAGE_BACKEND", "redis")
	t.Setenv("CHATFUTURE_STORAGE_REDIS_ADDR", "redis://cache:6379")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", cfg.Storage.RedisAddr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown backend", map[string]string{"CHATFUTURE_STORAGE_BACKEND": "etcd"}, "storage.backend"},
		{"mongo without uri", map[string]string{"CHATFUTURE_STORAGE_BACKEND": "mongo"}, "storage.mongo_uri"},
		{"redis without addr", map[string]string{"CHATFUTURE_STORAGE_BACKEND": "redis"}, "storage.redis_addr"},
		{"bad port", map[string]string{"CHATFUTURE_SERVER_PORT": "70000"}, "server.port"},
		{"custom provider without url", map[string]string{"CHATFUTURE_AI_PROVIDER": "local"}, "ai.base_url"},
		{"bad log level", map[string]string{"CHATFUTURE_LOG_LEVEL": "loud"}, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearProviderKeys(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "storage.mongo_uri", envKey("CHATFUTURE_STORAGE_MONGO_URI"))
	assert.Equal(t, "server.port", envKey("CHATFUTURE_SERVER_PORT"))
	assert.Equal(t, "debug", envKey("CHATFUTURE_DEBUG"))
}
