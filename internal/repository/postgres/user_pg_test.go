// internal/repository/postgres/user_pg_test.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockauth/internal/domain"
	"mockauth/internal/util"
)

var userColumns = []string{
	"id", "username", "email", "followers_count", "likes_count", "created_at", "updated_at",
}

const (
	selectQuery = `SELECT id, username, email, followers_count, likes_count, created_at, updated_at
              FROM users WHERE username = $1 LIMIT 1`
	insertQuery = `INSERT INTO users (username, email, followers_count, likes_count)
              VALUES ($1, $2, $3, $4)
              RETURNING id, username, email, followers_count, likes_count, created_at, updated_at`
)

func newRepoWithMock(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewUserRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestFindByUsername_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("3f1e6e0a-7b0e-4a4e-9f6a-1c2d3e4f5a6b", "alice", "alice@example.com", 1500, 4200, created, created))

	user, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)

	// The storage columns map back to the domain fields one for one.
	assert.Equal(t, "3f1e6e0a-7b0e-4a4e-9f6a-1c2d3e4f5a6b", user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, 1500, user.FollowersCount)
	assert.Equal(t, 4200, user.LikesCount)
	assert.True(t, created.Equal(user.CreatedAt))
	assert.True(t, created.Equal(user.UpdatedAt))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsername_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.FindByUsername(context.Background(), "nobody")
	assert.Nil(t, user)
	// Absence is a distinct, non-failure result.
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.NotErrorIs(t, err, util.ErrStoreUnavailable)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsername_BackendError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("alice").
		WillReturnError(errors.New("connection refused"))

	user, err := repo.FindByUsername(context.Background(), "alice")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, util.ErrStoreUnavailable)
	// The backend message stays attached for diagnostics.
	assert.Contains(t, err.Error(), "connection refused")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs("alice", "alice@example.com", 1500, 4200).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("3f1e6e0a-7b0e-4a4e-9f6a-1c2d3e4f5a6b", "alice", "alice@example.com", 1500, 4200, created, created))

	candidate, err := domain.NewUser("alice", "alice@example.com", 1500, 4200)
	require.NoError(t, err)

	stored, err := repo.Create(context.Background(), candidate)
	require.NoError(t, err)
	assert.Equal(t, "3f1e6e0a-7b0e-4a4e-9f6a-1c2d3e4f5a6b", stored.ID)
	assert.Equal(t, "alice", stored.Username)
	assert.Equal(t, 1500, stored.FollowersCount)
	assert.Equal(t, 4200, stored.LikesCount)
	assert.True(t, created.Equal(stored.CreatedAt))
	assert.True(t, stored.CreatedAt.Equal(stored.UpdatedAt))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs("alice", "alice@example.com", 1500, 4200).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	candidate, err := domain.NewUser("alice", "alice@example.com", 1500, 4200)
	require.NoError(t, err)

	stored, err := repo.Create(context.Background(), candidate)
	assert.Nil(t, stored)
	assert.ErrorIs(t, err, util.ErrDuplicateEntry)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_BackendError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs("alice", "alice@example.com", 1500, 4200).
		WillReturnError(errors.New("server closed the connection unexpectedly"))

	candidate, err := domain.NewUser("alice", "alice@example.com", 1500, 4200)
	require.NoError(t, err)

	// A failed create surfaces an error, never a silent nil result.
	stored, err := repo.Create(context.Background(), candidate)
	assert.Nil(t, stored)
	assert.ErrorIs(t, err, util.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "server closed the connection unexpectedly")

	assert.NoError(t, mock.ExpectationsWereMet())
}
