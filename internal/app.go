// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "mockauth/internal/api"
	"mockauth/internal/api/handler"
	"mockauth/internal/config"
	"mockauth/internal/repository"
	"mockauth/internal/repository/memory"
	"mockauth/internal/repository/postgres"
	"mockauth/internal/service"
	"mockauth/internal/util"
	"mockauth/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB // nil when the volatile store is selected

	// Store and service
	UserRepository repository.UserRepository
	AuthService    service.AuthService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components. The storage backend
// is chosen here, exactly once: the remote PostgreSQL store when both
// REMOTE_STORE_URL and REMOTE_STORE_ACCESS_KEY are set, the volatile
// in-memory store otherwise. The choice is frozen for the process
// lifetime; there is no runtime switching and no fallback from remote to
// volatile on failure.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Select and initialize the user store
	if app.Config.UseRemoteStore() {
		database, err := db.NewPostgresDB(app.Config.RemoteStore)
		if err != nil {
			return fmt.Errorf("failed to connect to remote store: %w", err)
		}
		app.DB = database
		app.UserRepository = postgres.NewUserRepository(database)
		app.Logger.Info("Remote user store selected.")
	} else {
		app.UserRepository = memory.NewUserRepository()
		app.Logger.Info("Volatile in-memory user store selected.")
	}

	// 4. Initialize Services
	app.AuthService = service.NewAuthService(app.UserRepository, app.Logger)
	app.Logger.Info("Services initialized.")

	// 5. Initialize HTTP Handlers and Router
	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
