package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in the canonical UUID form for JSON and text
// encodings.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses a canonical UUID form.
func (id *UserID) UnmarshalText(data []byte) error {
	parsed, err := uuid.ParseBytes(data)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = UserID(parsed)

	return nil
}

// User represents a registered account. Users are immutable after creation;
// there is no profile-update flow.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the user's password. It is never
	// serialized to API responses.
	PasswordHash string `json:"-"`

	// FullName is the display name provided at registration.
	FullName string `json:"full_name"`
	// Company is optional; empty means not provided.
	Company string `json:"company,omitempty"`

	// CreatedAt is the time the account was created.
	CreatedAt time.Time `json:"created_at"`
}
