package recruit

import (
	"context"
	"fmt"
	"recruit/pkg/domain"
	"recruit/pkg/serrors"
	"recruit/pkg/storage"
)

// The helpers below resolve the ownership chain company -> posting ->
// application link by link, in that order, so the caller always learns which
// link broke first. A missing entity is NOT_FOUND; an entity that exists but
// hangs off a different parent is CHAIN_MISMATCH. Identifiers supplied in the
// request path are never trusted without dereferencing.

// resolveCompany fetches the company or fails with NOT_FOUND.
func resolveCompany(ctx context.Context,
	st storage.AllStorage,
	id domain.CompanyID) (*domain.Company, error) {
	company, err := st.CompanyByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch company: %w", err)
	}
	if company == nil {
		return nil, serrors.With(serrors.ErrNotFound, "company %s does not exist", id)
	}

	return company, nil
}

// resolvePosting fetches the posting under an already-resolved company. A
// posting that belongs to a different company is reported as CHAIN_MISMATCH,
// not as missing, so a mismatched URL can never masquerade as a valid path.
func resolvePosting(ctx context.Context,
	st storage.AllStorage,
	company *domain.Company,
	id domain.PostingID) (*domain.JobPost, error) {
	post, err := st.JobPostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch job post: %w", err)
	}
	if post == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job post %s does not exist", id)
	}
	if post.CompanyID != company.ID {
		return nil, serrors.With(serrors.ErrChainMismatch,
			"job post %s does not belong to company %s", id, company.ID)
	}

	return post, nil
}

// resolveApplication fetches the application under an already-resolved
// company/posting pair. Both the posting reference and the denormalized
// company snapshot must line up.
func resolveApplication(ctx context.Context,
	st storage.AllStorage,
	company *domain.Company,
	post *domain.JobPost,
	id domain.ApplicationID) (*domain.JobApplication, error) {
	app, err := st.ApplicationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch application: %w", err)
	}
	if app == nil {
		return nil, serrors.With(serrors.ErrNotFound, "application %s does not exist", id)
	}
	if app.JobPostID != post.ID || app.CompanyID != company.ID {
		return nil, serrors.With(serrors.ErrChainMismatch,
			"application %s does not belong to job post %s of company %s", id, post.ID, company.ID)
	}

	return app, nil
}

// requireOwner fails with FORBIDDEN unless the actor owns the company.
// Ownership is the only role in the system; there are no admin bypasses.
func requireOwner(company *domain.Company, actor domain.AccountID) error {
	if company.CreatedBy != actor {
		return serrors.With(serrors.ErrForbidden,
			"account %s does not own company %s", actor, company.ID)
	}

	return nil
}
