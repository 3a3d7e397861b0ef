// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"mockauth/internal/domain"
	"mockauth/internal/repository"
	"mockauth/internal/util"
)

// uniqueViolation is the PostgreSQL error code raised when an insert
// breaks a unique constraint.
const uniqueViolation = pq.ErrorCode("23505")

// UserRepository implements repository.UserRepository for PostgreSQL.
// It owns no data; it translates between the domain shape and the
// externally owned users table.
type UserRepository struct {
	db *sqlx.DB
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new PostgreSQL-backed UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername retrieves a user by exact username match. The username
// column is unique, so at most one row matches; LIMIT 1 keeps the query
// well-behaved against pre-existing duplicate data.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username, email, followers_count, likes_count, created_at, updated_at
              FROM users WHERE username = $1 LIMIT 1`
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to get user by username '%s': %w", util.ErrStoreUnavailable, username, err)
	}
	return &user, nil
}

// Create inserts a new user, letting the database assign the id and the
// timestamps, and returns the stored row mapped back to the domain shape.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var stored domain.User
	query := `INSERT INTO users (username, email, followers_count, likes_count)
              VALUES ($1, $2, $3, $4)
              RETURNING id, username, email, followers_count, likes_count, created_at, updated_at`
	err := r.db.GetContext(ctx, &stored, query,
		user.Username, user.Email, user.FollowersCount, user.LikesCount)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, util.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("%w: failed to create user '%s': %w", util.ErrStoreUnavailable, user.Username, err)
	}
	return &stored, nil
}
