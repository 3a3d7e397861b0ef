// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input provided")
	ErrValidation       = errors.New("record validation failed")
	ErrDuplicateEntry   = errors.New("duplicate entry") // Creating a user with an existing username
	ErrStoreUnavailable = errors.New("store unavailable")
)

// IsError reports whether err matches target in its wrap chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
