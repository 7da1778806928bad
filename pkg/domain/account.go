package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AccountID uniquely identifies a registered account within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type AccountID uuid.UUID

// String returns the canonical string form of the account ID.
func (id AccountID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the ID is the zero UUID.
func (id AccountID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders the ID in canonical UUID form for JSON and text output.
func (id AccountID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText parses the canonical UUID form.
func (id *AccountID) UnmarshalText(data []byte) error {
	parsed, err := uuid.Parse(string(data))
	if err != nil {
		return fmt.Errorf("could not parse ID: %w", err)
	}
	*id = AccountID(parsed)

	return nil
}

// Account represents a registered user identity, the actor in every
// authorization decision.
type Account struct {
	// ID is the unique identifier of the account. It is also the JWT subject
	// used by the identity resolver.
	ID AccountID `json:"id"`

	// Email is unique across the system.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the account's credential. Never serialized.
	PasswordHash string `json:"-"`

	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`

	// CreatedAt is the time when the account was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the account profile was last edited.
	UpdatedAt time.Time `json:"updatedAt"`
}
