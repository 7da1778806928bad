package storage

import (
	"context"
	"recruit/pkg/domain"
)

// AccountUpdates describes a set of optional profile fields that can be applied
// to an existing account. Only non-nil fields are updated.
type AccountUpdates struct {
	FullName     *string
	Phone        *string
	Location     *string
	Linkedin     *string
	PasswordHash *string
}

// AccountStorage defines CRUD operations for accounts. Deleting an account
// cascades to every company it owns, every posting it created and every
// application tied to those postings; the cascade is atomic.
type AccountStorage interface {
	// StoreAccount inserts a new account and returns the stored row (including
	// generated fields). A duplicate email yields a CONFLICT error.
	StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	// AccountByID fetches an account by its ID. Returns nil when not found.
	AccountByID(ctx context.Context, id domain.AccountID) (*domain.Account, error)
	// AccountByEmail fetches an account by its unique email. Returns nil when
	// not found.
	AccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	// UpdateAccount applies the provided field set and returns the updated row,
	// or nil when the account does not exist. updated_at is set automatically.
	UpdateAccount(ctx context.Context, id domain.AccountID, updates AccountUpdates) (*domain.Account, error)
	// DeleteAccount removes the account and cascades per the rules above. It
	// reports whether a row was deleted.
	DeleteAccount(ctx context.Context, id domain.AccountID) (bool, error)
}
