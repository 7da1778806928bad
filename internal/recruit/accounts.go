package recruit

import (
	"context"
	"fmt"
	"recruit/pkg/domain"
	"recruit/pkg/serrors"
	"recruit/pkg/storage"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the minimum accepted credential length at sign-up.
const minPasswordLength = 6

// SignUp registers a new account. The email is stored as given but matched
// case-insensitively for uniqueness; the password is stored as a bcrypt hash.
func (s service) SignUp(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, serrors.With(serrors.ErrValidation, "invalid email address")
	}
	if len(password) < minPasswordLength {
		return nil, serrors.With(serrors.ErrValidation,
			"password must be at least %d characters", minPasswordLength)
	}

	// friendly pre-check; the unique index on lower(email) remains the
	// authoritative guard under concurrency
	existing, err := s.storage.AccountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	account, err := s.storage.StoreAccount(ctx, domain.Account{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("could not store account: %w", err)
	}

	return account, nil
}

// SignIn verifies the credential and returns the matching account. Wrong email
// and wrong password are indistinguishable to the caller.
func (s service) SignIn(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.storage.AccountByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("could not fetch account by email: %w", err)
	}
	if account == nil {
		return nil, serrors.With(serrors.ErrUnauthenticated, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, serrors.With(serrors.ErrUnauthenticated, "invalid email or password")
	}

	return account, nil
}

// Account returns the account for the given ID.
func (s service) Account(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	account, err := s.storage.AccountByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account: %w", err)
	}
	if account == nil {
		return nil, serrors.With(serrors.ErrNotFound, "account %s does not exist", id)
	}

	return account, nil
}

// UpdateProfile applies profile edits to the caller's own account. Profile
// edits never touch existing applications: the snapshot stored at apply time
// stays as reviewed.
func (s service) UpdateProfile(ctx context.Context,
	id domain.AccountID,
	updates storage.AccountUpdates) (*domain.Account, error) {
	account, err := s.storage.UpdateAccount(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update account: %w", err)
	}
	if account == nil {
		return nil, serrors.With(serrors.ErrNotFound, "account %s does not exist", id)
	}

	return account, nil
}

// DeleteAccount removes the account. The store cascades to owned companies,
// their postings and all dependent applications in the same transaction; logo
// blobs of the deleted companies are cleaned up by a background job enqueued
// atomically with the delete.
func (s service) DeleteAccount(ctx context.Context, id domain.AccountID) error {
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		owned, err := tx.CompaniesByOwner(ctx, id)
		if err != nil {
			return fmt.Errorf("could not list owned companies: %w", err)
		}

		found, err := tx.DeleteAccount(ctx, id)
		if err != nil {
			return fmt.Errorf("could not delete account: %w", err)
		}
		if !found {
			return serrors.With(serrors.ErrNotFound, "account %s does not exist", id)
		}

		var keys []string
		for _, company := range owned {
			if company.LogoKey != "" {
				keys = append(keys, company.LogoKey)
			}
		}
		if len(keys) > 0 {
			if _, err := tx.AddJob(ctx, BlobCleanupArgs{
				Keys:        keys,
				maxAttempts: s.options.CleanupMaxAttempts,
			}, nil); err != nil {
				return fmt.Errorf("could not enqueue blob cleanup: %w", err)
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete account %s: %w", id, err)
	}

	return nil
}

// OwnedCompanies lists the companies owned by the account.
func (s service) OwnedCompanies(ctx context.Context, id domain.AccountID) ([]domain.Company, error) {
	companies, err := s.storage.CompaniesByOwner(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not list owned companies: %w", err)
	}

	return companies, nil
}

// OwnApplications lists the applications submitted by the account.
func (s service) OwnApplications(ctx context.Context, id domain.AccountID) ([]domain.JobApplication, error) {
	apps, err := s.storage.ApplicationsByApplicant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not list own applications: %w", err)
	}

	return apps, nil
}
