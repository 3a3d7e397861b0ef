// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"mockauth/internal/domain"
	"mockauth/internal/repository"
	"mockauth/internal/util"
)

// Counter ranges for newly created profiles: followers in [500, 5499],
// likes in [1000, 10999], uniform.
const (
	followersMin  = 500
	followersSpan = 5000
	likesMin      = 1000
	likesSpan     = 10000
)

// AuthService defines the interface for the login business logic.
type AuthService interface {
	// Login resolves the identity for username, creating it if absent.
	Login(ctx context.Context, username string) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService backed by the given repository.
func NewAuthService(userRepo repository.UserRepository, logger *slog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login is a get-or-create keyed on username. Repeated logins with the
// same username return the stored record unchanged; counters, email and
// timestamps are only ever assigned on the create path.
func (s *authService) Login(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, util.ErrInvalidInput
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !util.IsError(err, util.ErrNotFound) {
		s.logger.Error("Failed to look up user", "operation", "FindByUsername", "username", username, "error", err)
		return nil, fmt.Errorf("login: failed to find user: %w", err)
	}

	candidate, err := domain.NewUser(
		username,
		fmt.Sprintf("%s@example.com", username),
		followersMin+rand.IntN(followersSpan),
		likesMin+rand.IntN(likesSpan),
	)
	if err != nil {
		return nil, fmt.Errorf("login: invalid candidate record: %w", err)
	}

	created, err := s.userRepo.Create(ctx, candidate)
	if err != nil {
		if util.IsError(err, util.ErrDuplicateEntry) {
			// A concurrent login created the record between the find and
			// the insert; the stored record wins.
			return s.userRepo.FindByUsername(ctx, username)
		}
		s.logger.Error("Failed to create user", "operation", "Create", "username", username, "error", err)
		return nil, fmt.Errorf("login: failed to create user: %w", err)
	}

	return created, nil
}
