// internal/domain/user.go
package domain

import (
	"fmt"
	"time"

	"mockauth/internal/util"
)

// User represents a resolved identity with its synthetic profile counters.
// The json tags carry the wire field names, the db tags the storage column
// names; together they form the full translation between the two formats.
type User struct {
	ID             string    `db:"id" json:"id"`                          // Opaque unique identifier, assigned by the store
	Username       string    `db:"username" json:"username"`              // Unique business key, immutable after creation
	Email          string    `db:"email" json:"email"`                    // Derived from username when not otherwise supplied
	FollowersCount int       `db:"followers_count" json:"followersCount"` // Set once at creation, no mutation path exists
	LikesCount     int       `db:"likes_count" json:"likesCount"`         // Set once at creation, no mutation path exists
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`           // Timestamp of creation
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`           // Initialized equal to CreatedAt
}

// NewUser validates a candidate payload and returns a User ready to be
// persisted. ID and timestamps are assigned by the store, not here. This
// runs before any store write; it is the only shape check between the
// request and the storage layer.
func NewUser(username, email string, followersCount, likesCount int) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username must be a non-empty string", util.ErrValidation)
	}
	if followersCount < 0 || likesCount < 0 {
		return nil, fmt.Errorf("%w: counters must be non-negative", util.ErrValidation)
	}
	return &User{
		Username:       username,
		Email:          email,
		FollowersCount: followersCount,
		LikesCount:     likesCount,
	}, nil
}
