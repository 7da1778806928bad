package storage

import (
	"context"
	"recruit/pkg/domain"
)

// ApplicationStorage defines CRUD and query operations for job applications.
// The unique constraint on (applicant, posting) lives in the store and is the
// authoritative guard against duplicate applications; StoreApplication
// surfaces violations as CONFLICT errors.
type ApplicationStorage interface {
	// StoreApplication inserts a new application and returns the stored row. A
	// second application for the same (applicant, posting) pair yields a
	// CONFLICT error regardless of any earlier existence pre-check.
	StoreApplication(ctx context.Context, app domain.JobApplication) (*domain.JobApplication, error)
	// ApplicationByID fetches an application by its ID. Returns nil when not found.
	ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.JobApplication, error)
	// ApplicationsByApplicant returns all applications submitted by the given
	// account, newest first.
	ApplicationsByApplicant(ctx context.Context, applicant domain.AccountID) ([]domain.JobApplication, error)
	// ApplicationsByPosting returns all applications for the given company and
	// posting pair.
	ApplicationsByPosting(ctx context.Context,
		companyID domain.CompanyID,
		postingID domain.PostingID) ([]domain.JobApplication, error)
	// ApplicationExists reports whether the applicant already has an
	// application for the posting. This is the friendly pre-check only; the
	// store constraint remains authoritative under concurrency.
	ApplicationExists(ctx context.Context, applicant domain.AccountID, postingID domain.PostingID) (bool, error)
	// UpdateApplicationStatus sets the status of the application and returns
	// the updated row, or nil when the application does not exist. updated_at
	// is set automatically.
	UpdateApplicationStatus(ctx context.Context,
		id domain.ApplicationID,
		status domain.ApplicationStatus) (*domain.JobApplication, error)
}
