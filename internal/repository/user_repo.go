// internal/repository/user_repo.go
package repository

import (
	"context"

	"mockauth/internal/domain"
)

// UserRepository defines the interface for identity resolution storage.
// Exactly two implementations exist: the volatile in-memory store and the
// remote PostgreSQL store. Callers program against this interface only;
// the backend is chosen once at process start and never switched.
type UserRepository interface {
	// FindByUsername retrieves a user by exact, case-sensitive username
	// match. Absence is a normal result reported as util.ErrNotFound, not
	// a backend failure; backend failures wrap util.ErrStoreUnavailable.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create assigns a fresh unique id and timestamps, persists the user
	// and returns the stored record. Returns util.ErrDuplicateEntry when
	// the username is already taken, so callers can treat a lost
	// find-then-create race as "someone else just created it".
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
