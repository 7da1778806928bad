package recruit

import (
	"context"
	"fmt"
	"recruit/pkg/domain"
	"recruit/pkg/serrors"
	"recruit/pkg/storage"
	"strings"
)

// CreatePosting adds a posting under a company owned by the actor.
func (s service) CreatePosting(ctx context.Context,
	actor domain.AccountID,
	companyID domain.CompanyID,
	params CreatePostingParams) (*domain.JobPost, error) {
	company, err := resolveCompany(ctx, s.storage, companyID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(company, actor); err != nil {
		return nil, err
	}

	params.Title = strings.TrimSpace(params.Title)
	if params.Title == "" {
		return nil, serrors.With(serrors.ErrValidation, "posting title is required")
	}
	if params.Type == "" {
		params.Type = domain.JobTypeRemote
	}
	if _, ok := domain.ParseJobType(string(params.Type)); !ok {
		return nil, serrors.With(serrors.ErrValidation, "unknown job type %q", params.Type)
	}

	post, err := s.storage.StoreJobPost(ctx, domain.JobPost{
		Title:       params.Title,
		Location:    params.Location,
		Type:        params.Type,
		Description: params.Description,
		SalaryRange: params.SalaryRange,
		CompanyID:   companyID,
		CreatedBy:   actor,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store job post: %w", err)
	}

	return post, nil
}

// Postings lists all postings across all companies.
func (s service) Postings(ctx context.Context) ([]domain.JobPost, error) {
	posts, err := s.storage.JobPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list job posts: %w", err)
	}

	return posts, nil
}

// CompanyPostings lists the postings of one company.
func (s service) CompanyPostings(ctx context.Context,
	companyID domain.CompanyID) ([]domain.JobPost, error) {
	if _, err := resolveCompany(ctx, s.storage, companyID); err != nil {
		return nil, err
	}

	posts, err := s.storage.JobPostsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("could not list company job posts: %w", err)
	}

	return posts, nil
}

// Posting resolves a posting through its company path.
func (s service) Posting(ctx context.Context,
	companyID domain.CompanyID,
	postingID domain.PostingID) (*domain.JobPost, error) {
	company, err := resolveCompany(ctx, s.storage, companyID)
	if err != nil {
		return nil, err
	}

	return resolvePosting(ctx, s.storage, company, postingID)
}

// UpdatePosting applies edits to a posting under a company owned by the actor.
// The owning company reference is immutable and not part of the update set.
func (s service) UpdatePosting(ctx context.Context,
	actor domain.AccountID,
	companyID domain.CompanyID,
	postingID domain.PostingID,
	updates storage.JobPostUpdates) (*domain.JobPost, error) {
	company, err := resolveCompany(ctx, s.storage, companyID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(company, actor); err != nil {
		return nil, err
	}
	if _, err := resolvePosting(ctx, s.storage, company, postingID); err != nil {
		return nil, err
	}
	if updates.Title != nil && strings.TrimSpace(*updates.Title) == "" {
		return nil, serrors.With(serrors.ErrValidation, "posting title is required")
	}
	if updates.Type != nil {
		if _, ok := domain.ParseJobType(string(*updates.Type)); !ok {
			return nil, serrors.With(serrors.ErrValidation, "unknown job type %q", *updates.Type)
		}
	}

	updated, err := s.storage.UpdateJobPost(ctx, postingID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update job post: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job post %s does not exist", postingID)
	}

	return updated, nil
}

// DeletePosting removes a posting under a company owned by the actor. The
// store cascades to the posting's applications in the same transaction.
func (s service) DeletePosting(ctx context.Context,
	actor domain.AccountID,
	companyID domain.CompanyID,
	postingID domain.PostingID) error {
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		company, err := resolveCompany(ctx, tx, companyID)
		if err != nil {
			return err
		}
		if err := requireOwner(company, actor); err != nil {
			return err
		}
		if _, err := resolvePosting(ctx, tx, company, postingID); err != nil {
			return err
		}

		found, err := tx.DeleteJobPost(ctx, postingID)
		if err != nil {
			return fmt.Errorf("could not delete job post: %w", err)
		}
		if !found {
			return serrors.With(serrors.ErrNotFound, "job post %s does not exist", postingID)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete job post %s: %w", postingID, err)
	}

	return nil
}
