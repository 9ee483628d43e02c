package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultGitHubAPIURL is the public GitHub REST API root.
const DefaultGitHubAPIURL = "https://api.github.com/"

// Config holds the application configuration
type Config struct {
	// GitHub
	GitHubToken  string
	GitHubAPIURL string

	// Storage (lookup history)
	StorageType string // "none", "sqlite" or "postgres"
	SQLitePath  string
	PostgresURL string

	// API Server
	APIPort string
	APIHost string

	// CLI
	APIEndpoint string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		GitHubToken:  getEnv("GITHUB_TOKEN", ""),
		GitHubAPIURL: getEnv("GITHUB_API_URL", DefaultGitHubAPIURL),
		StorageType:  getEnv("STORAGE_TYPE", "none"),
		SQLitePath:   getEnv("SQLITE_PATH", "./history.db"),
		PostgresURL:  getEnv("POSTGRES_URL", ""),
		APIPort:      getEnv("API_PORT", "8080"),
		APIHost:      getEnv("API_HOST", "localhost"),
		APIEndpoint:  getEnv("API_ENDPOINT", "http://localhost:8080"),
	}, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GitHubToken == "" {
		return &ConfigError{Field: "GITHUB_TOKEN", Message: "GitHub token is required"}
	}
	switch c.StorageType {
	case "none", "sqlite", "postgres":
	default:
		return &ConfigError{Field: "STORAGE_TYPE", Message: "must be 'none', 'sqlite' or 'postgres'"}
	}
	if c.StorageType == "postgres" && c.PostgresURL == "" {
		return &ConfigError{Field: "POSTGRES_URL", Message: "PostgreSQL URL is required when STORAGE_TYPE is 'postgres'"}
	}
	return nil
}

// HistoryEnabled reports whether lookups should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.StorageType == "sqlite" || c.StorageType == "postgres"
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
