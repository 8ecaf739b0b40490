package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds environment-based configuration for the MCP server
type Config struct {
	ProjectID       string
	CredentialsPath string
}

// LoadConfig reads configuration from environment variables, honoring a
// local .env file when present
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ProjectID:       os.Getenv("GCP_PROJECT_ID"),
		CredentialsPath: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	}
}

// HasProject returns true if a GCP project is configured
func (c *Config) HasProject() bool {
	return c.ProjectID != ""
}
