// internal/repository/memory/user_mem.go
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mockauth/internal/domain"
	"mockauth/internal/repository"
	"mockauth/internal/util"
)

// UserRepository implements repository.UserRepository with an in-process
// map keyed by generated id. Contents live for the process lifetime only.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates an empty in-memory UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*domain.User),
	}
}

// FindByUsername scans the store for an exact username match. O(n), which
// is acceptable at the single-process scale this store targets.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			found := *user
			return &found, nil
		}
	}
	return nil, util.ErrNotFound
}

// Create inserts the user under a fresh random id. The username is
// re-checked under the write lock, so two concurrent creates for the same
// username cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, util.ErrDuplicateEntry
		}
	}

	now := time.Now().UTC()
	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.users[stored.ID] = &stored

	created := stored
	return &created, nil
}

// Len reports the number of stored records.
func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
