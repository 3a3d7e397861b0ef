// internal/config/config.go
package config

import (
	"os"

	"mockauth/pkg/db" // Import db package for its Config struct
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort  string
	RemoteStore db.Config
}

// LoadConfig loads configuration from environment variables.
// The remote store variables are optional: leaving either unset selects
// the volatile in-memory store instead.
func LoadConfig() (*AppConfig, error) {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	return &AppConfig{
		ServerPort: serverPort,
		RemoteStore: db.Config{
			URL:       os.Getenv("REMOTE_STORE_URL"),
			AccessKey: os.Getenv("REMOTE_STORE_ACCESS_KEY"),
		},
	}, nil
}

// UseRemoteStore reports whether the remote persistent store should be
// selected. Both the endpoint URL and the access key must be non-empty.
func (c *AppConfig) UseRemoteStore() bool {
	return c.RemoteStore.URL != "" && c.RemoteStore.AccessKey != ""
}
