package storage

import (
	"context"
	"pragency/pkg/domain"
)

// UserStorage defines persistence operations for user accounts. Users are
// created once and never updated; lookups power login and token resolution.
type UserStorage interface {
	// StoreUser inserts a new user and returns the stored row as it exists in
	// the database (including generated ID and creation timestamp). A unique
	// violation on the email column is reported as ErrDuplicateEmail.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByEmail fetches a user by their unique email. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByID fetches a user by their ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}
