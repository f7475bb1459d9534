package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakethvvv/verify-your-cart-v1.3/internal/config"
)

const sampleYAML = `
server:
  port: 8080
  allowedOrigins:
    - http://localhost:5173
database:
  driver: mysql
  host: localhost
  port: 3306
  user: cart
  password: secret
  name: verifycart
ai:
  apiKey: sk-real-key
  primaryModel: gpt-4o
  fallbackModel: gpt-4o-mini
  timeoutSeconds: 30
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "gpt-4o", cfg.AI.PrimaryModel)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.FallbackModel)
	assert.Equal(t, 30, cfg.AITimeoutSeconds())
	assert.Equal(t, "cart:secret@tcp(localhost:3306)/verifycart?parseTime=true&charset=utf8mb4&loc=UTC", cfg.MySQLDSN())
	assert.Equal(t, "host=localhost port=3306 user=cart password=secret dbname=verifycart sslmode=disable", cfg.PostgresDSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")
	cfg, err := config.Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", cfg.AI.APIKey)
}

func TestHasLiveAI(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"sk-real-key", true},
		{"", false},
		{"   ", false},
		{"changeme", false},
		{"CHANGEME", false},
		{"your-api-key-here", false},
		{"replace-me", false},
	}
	for _, tc := range cases {
		var cfg config.Config
		cfg.AI.APIKey = tc.key
		assert.Equal(t, tc.want, cfg.HasLiveAI(), "key %q", tc.key)
	}
}

func TestAITimeoutSeconds_Default(t *testing.T) {
	var cfg config.Config
	assert.Equal(t, 45, cfg.AITimeoutSeconds())
}
