// pkg/db/postgres.go
package db

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Config holds the remote store connection configuration. URL is a
// postgres:// endpoint; AccessKey is the credential, kept out of the URL
// so it can be supplied through a separate environment variable.
type Config struct {
	URL       string
	AccessKey string
}

// ConnString combines the endpoint URL and the access key into a driver
// connection string. The access key is injected as the URL password; a
// username embedded in the URL is preserved, otherwise "postgres" is used.
func (c Config) ConnString() (string, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return "", fmt.Errorf("invalid remote store URL: %w", err)
	}
	username := "postgres"
	if u.User != nil && u.User.Username() != "" {
		username = u.User.Username()
	}
	u.User = url.UserPassword(username, c.AccessKey)
	return u.String(), nil
}

// NewPostgresDB initializes and returns a new PostgreSQL database
// connection. It uses sqlx for enhanced database operations.
func NewPostgresDB(cfg Config) (*sqlx.DB, error) {
	connStr, err := cfg.ConnString()
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Ping the database to verify the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return db, nil
}
