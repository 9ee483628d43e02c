package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"GITHUB_TOKEN", "GITHUB_API_URL", "STORAGE_TYPE", "SQLITE_PATH", "POSTGRES_URL", "API_PORT", "API_HOST", "API_ENDPOINT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultGitHubAPIURL, cfg.GitHubAPIURL)
	assert.Equal(t, "none", cfg.StorageType)
	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, "localhost", cfg.APIHost)
	assert.False(t, cfg.HistoryEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "secret")
	t.Setenv("STORAGE_TYPE", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/h.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.GitHubToken)
	assert.Equal(t, "/tmp/h.db", cfg.SQLitePath)
	assert.True(t, cfg.HistoryEnabled())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{"valid", Config{GitHubToken: "t", StorageType: "none"}, ""},
		{"missing token", Config{StorageType: "none"}, "GITHUB_TOKEN"},
		{"bad storage", Config{GitHubToken: "t", StorageType: "redis"}, "STORAGE_TYPE"},
		{"postgres without url", Config{GitHubToken: "t", StorageType: "postgres"}, "POSTGRES_URL"},
		{"postgres with url", Config{GitHubToken: "t", StorageType: "postgres", PostgresURL: "postgres://x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}
