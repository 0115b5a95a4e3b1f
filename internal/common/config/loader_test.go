package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, "app:\n  name: skillsync\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 30000, cfg.API.Timeout)
	assert.Equal(t, 30*time.Second, cfg.API.TimeoutDuration())
	assert.Equal(t, "file", cfg.Session.Backend)
	assert.NotEmpty(t, cfg.Session.Path)
	assert.Equal(t, "skillsync:", cfg.Session.Redis.KeyPrefix)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "skillsync/dev", cfg.API.UserAgent)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
}

func TestLoadFromFile_ValuesAndTrailingSlash(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://jobs.example.com/
  timeout: 1500
session:
  backend: redis
  redis:
    address: localhost:6379
    db: 2
logging:
  level: debug
  format: json
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://jobs.example.com", cfg.API.BaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.API.TimeoutDuration())
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, "localhost:6379", cfg.Session.Redis.Address)
	assert.Equal(t, 2, cfg.Session.Redis.DB)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFile_EnvOverride(t *testing.T) {
	t.Setenv("SKILLSYNC_API_BASE_URL", "http://backend.internal:9000")
	t.Setenv("REDIS_PASSWORD_FOR_TEST", "s3cret")
	path := writeConfig(t, `
session:
  backend: redis
  redis:
    address: cache:6379
    password: ${REDIS_PASSWORD_FOR_TEST}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http://backend.internal:9000", cfg.API.BaseURL)
	assert.Equal(t, "s3cret", cfg.Session.Redis.Password)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "relative base url",
			body:   "api:\n  base_url: localhost:8081\n",
			errMsg: "api.base_url",
		},
		{
			name:   "unsupported scheme",
			body:   "api:\n  base_url: ftp://example.com\n",
			errMsg: "scheme must be http or https",
		},
		{
			name:   "redis without address",
			body:   "session:\n  backend: redis\n",
			errMsg: "session.redis.address is required",
		},
		{
			name:   "unknown backend",
			body:   "session:\n  backend: sqlite\n",
			errMsg: "session.backend must be one of",
		},
		{
			name:   "tracing without endpoint",
			body:   "tracing:\n  enabled: true\n",
			errMsg: "tracing.endpoint is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, GetDuration(250))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
