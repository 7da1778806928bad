package recruit

import (
	"context"
	"errors"
	"fmt"
	"recruit/pkg/blob"
	"recruit/pkg/domain"
	"recruit/pkg/serrors"
	"recruit/pkg/storage"
	"strings"
)

// logoKey derives the blob store handle for a company logo. Re-uploading
// overwrites in place, so a company never leaves more than one blob behind.
func logoKey(id domain.CompanyID) string { return "logo-" + id.String() }

// CreateCompany registers a new company owned by the actor.
func (s service) CreateCompany(ctx context.Context,
	actor domain.AccountID,
	params CreateCompanyParams) (*domain.Company, error) {
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		return nil, serrors.With(serrors.ErrValidation, "company name is required")
	}

	// friendly pre-check; the unique index on lower(name) remains the
	// authoritative guard under concurrency
	existing, err := s.storage.CompanyByName(ctx, params.Name)
	if err != nil {
		return nil, fmt.Errorf("could not check company name uniqueness: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "a company named %q already exists", params.Name)
	}

	company, err := s.storage.StoreCompany(ctx, domain.Company{
		Name:         params.Name,
		Website:      params.Website,
		Address:      params.Address,
		SupportEmail: params.SupportEmail,
		CreatedBy:    actor,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store company: %w", err)
	}

	return company, nil
}

// Companies lists all companies.
func (s service) Companies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.storage.Companies(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list companies: %w", err)
	}

	return companies, nil
}

// Company returns a company by ID.
func (s service) Company(ctx context.Context, id domain.CompanyID) (*domain.Company, error) {
	return resolveCompany(ctx, s.storage, id)
}

// UpdateCompany applies edits to a company owned by the actor.
func (s service) UpdateCompany(ctx context.Context,
	actor domain.AccountID,
	id domain.CompanyID,
	updates storage.CompanyUpdates) (*domain.Company, error) {
	company, err := resolveCompany(ctx, s.storage, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(company, actor); err != nil {
		return nil, err
	}
	if updates.Name != nil && strings.TrimSpace(*updates.Name) == "" {
		return nil, serrors.With(serrors.ErrValidation, "company name is required")
	}

	updated, err := s.storage.UpdateCompany(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update company: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "company %s does not exist", id)
	}

	return updated, nil
}

// DeleteCompany removes a company owned by the actor. The store cascades to
// the company's postings and their applications in the same transaction; the
// logo blob, if any, is cleaned up by a background job enqueued atomically
// with the delete.
func (s service) DeleteCompany(ctx context.Context, actor domain.AccountID, id domain.CompanyID) error {
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		company, err := resolveCompany(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := requireOwner(company, actor); err != nil {
			return err
		}

		deleted, err := tx.DeleteCompany(ctx, id)
		if err != nil {
			return fmt.Errorf("could not delete company: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "company %s does not exist", id)
		}

		if deleted.LogoKey != "" {
			if _, err := tx.AddJob(ctx, BlobCleanupArgs{
				Keys:        []string{deleted.LogoKey},
				maxAttempts: s.options.CleanupMaxAttempts,
			}, nil); err != nil {
				return fmt.Errorf("could not enqueue blob cleanup: %w", err)
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete company %s: %w", id, err)
	}

	return nil
}

// UploadLogo stores the company logo and records its handle on the company.
// Oversized payloads are rejected before touching the blob store.
func (s service) UploadLogo(ctx context.Context,
	actor domain.AccountID,
	id domain.CompanyID,
	data []byte) error {
	company, err := resolveCompany(ctx, s.storage, id)
	if err != nil {
		return err
	}
	if err := requireOwner(company, actor); err != nil {
		return err
	}
	if len(data) == 0 {
		return serrors.With(serrors.ErrValidation, "logo payload is empty")
	}
	if len(data) > s.options.MaxLogoSize {
		return serrors.With(serrors.ErrValidation,
			"logo exceeds the maximum size of %d bytes", s.options.MaxLogoSize)
	}

	key := logoKey(id)
	if err := s.blobs.Put(ctx, key, data); err != nil {
		if errors.Is(err, blob.ErrSizeExceeded) {
			return serrors.Wrap(serrors.ErrValidation, err,
				"logo exceeds the maximum size of %d bytes", s.options.MaxLogoSize)
		}

		return fmt.Errorf("could not store logo blob: %w", err)
	}

	if _, err := s.storage.UpdateCompany(ctx, id, storage.CompanyUpdates{LogoKey: &key}); err != nil {
		return fmt.Errorf("could not record logo key: %w", err)
	}

	return nil
}

// Logo returns the stored logo bytes for the company.
func (s service) Logo(ctx context.Context, id domain.CompanyID) ([]byte, error) {
	company, err := resolveCompany(ctx, s.storage, id)
	if err != nil {
		return nil, err
	}
	if company.LogoKey == "" {
		return nil, serrors.With(serrors.ErrNotFound, "company %s has no logo", id)
	}

	data, err := s.blobs.Get(ctx, company.LogoKey)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "company %s has no logo", id)
		}

		return nil, fmt.Errorf("could not fetch logo blob: %w", err)
	}

	return data, nil
}
