// Package recruit implements the recruitment core: account lifecycle, company
// and posting management, and the application state machine. Every mutating
// operation resolves the full ownership chain (company -> posting ->
// application) before touching anything, and reports exactly which link broke
// when it does.
package recruit

import (
	"context"
	"recruit/pkg/domain"
	"recruit/pkg/storage"
)

//go:generate mockgen -package mockrecruit -source=interface.go -destination=mock/mockrecruit.go *

// CreateCompanyParams carries the validated fields for a new company.
type CreateCompanyParams struct {
	Name         string
	Website      string
	Address      domain.Address
	SupportEmail string
}

// CreatePostingParams carries the validated fields for a new job posting.
type CreatePostingParams struct {
	Title       string
	Type        domain.JobType
	Location    domain.JobLocation
	Description string
	SalaryRange string
}

// Accounts covers sign-up, sign-in and the account profile surface.
type Accounts interface {
	// SignUp registers a new account with a unique email and a bcrypt-hashed
	// password. Duplicate emails yield CONFLICT.
	SignUp(ctx context.Context, email, password string) (*domain.Account, error)
	// SignIn verifies the credential and returns the matching account, or
	// UNAUTHENTICATED when the email or password is wrong.
	SignIn(ctx context.Context, email, password string) (*domain.Account, error)
	// Account returns the account for the given ID, or NOT_FOUND.
	Account(ctx context.Context, id domain.AccountID) (*domain.Account, error)
	// UpdateProfile applies profile edits to the caller's own account.
	UpdateProfile(ctx context.Context, id domain.AccountID, updates storage.AccountUpdates) (*domain.Account, error)
	// DeleteAccount removes the account and cascades to owned companies, their
	// postings and all dependent applications atomically. Orphaned logo blobs
	// are cleaned up by a background job enqueued in the same transaction.
	DeleteAccount(ctx context.Context, id domain.AccountID) error
	// OwnedCompanies lists the companies owned by the account.
	OwnedCompanies(ctx context.Context, id domain.AccountID) ([]domain.Company, error)
	// OwnApplications lists the applications submitted by the account.
	OwnApplications(ctx context.Context, id domain.AccountID) ([]domain.JobApplication, error)
}

// Companies covers company management and the logo blob surface.
type Companies interface {
	// CreateCompany registers a new company owned by the actor. Company names
	// are unique; the store constraint is authoritative and duplicates yield
	// CONFLICT.
	CreateCompany(ctx context.Context, actor domain.AccountID, params CreateCompanyParams) (*domain.Company, error)
	// Companies lists all companies.
	Companies(ctx context.Context) ([]domain.Company, error)
	// Company returns a company by ID, or NOT_FOUND.
	Company(ctx context.Context, id domain.CompanyID) (*domain.Company, error)
	// UpdateCompany applies edits; only the owner may mutate (FORBIDDEN otherwise).
	UpdateCompany(ctx context.Context,
		actor domain.AccountID,
		id domain.CompanyID,
		updates storage.CompanyUpdates) (*domain.Company, error)
	// DeleteCompany removes the company and cascades to its postings and their
	// applications atomically. Owner only.
	DeleteCompany(ctx context.Context, actor domain.AccountID, id domain.CompanyID) error
	// UploadLogo stores the company logo in the blob store (owner only, size
	// capped) and records its handle on the company.
	UploadLogo(ctx context.Context, actor domain.AccountID, id domain.CompanyID, data []byte) error
	// Logo returns the stored logo bytes, or NOT_FOUND when the company has none.
	Logo(ctx context.Context, id domain.CompanyID) ([]byte, error)
}

// Postings covers job posting management under a company.
type Postings interface {
	// CreatePosting adds a posting under the company. Owner only; the
	// posting's CreatedBy matches the company owner at creation time.
	CreatePosting(ctx context.Context,
		actor domain.AccountID,
		companyID domain.CompanyID,
		params CreatePostingParams) (*domain.JobPost, error)
	// Postings lists all postings across all companies.
	Postings(ctx context.Context) ([]domain.JobPost, error)
	// CompanyPostings lists the postings of one company, or NOT_FOUND when the
	// company does not exist.
	CompanyPostings(ctx context.Context, companyID domain.CompanyID) ([]domain.JobPost, error)
	// Posting resolves a posting through its company path. A posting that
	// exists under a different company yields CHAIN_MISMATCH, never a silent
	// redirect.
	Posting(ctx context.Context, companyID domain.CompanyID, postingID domain.PostingID) (*domain.JobPost, error)
	// UpdatePosting applies edits. Owner only, full chain validated.
	UpdatePosting(ctx context.Context,
		actor domain.AccountID,
		companyID domain.CompanyID,
		postingID domain.PostingID,
		updates storage.JobPostUpdates) (*domain.JobPost, error)
	// DeletePosting removes the posting and its applications atomically.
	// Owner only, full chain validated.
	DeletePosting(ctx context.Context,
		actor domain.AccountID,
		companyID domain.CompanyID,
		postingID domain.PostingID) error
}

// Applications covers the application lifecycle.
type Applications interface {
	// Apply submits an application against a posting addressed through its
	// company. The chain is validated first; owners cannot apply to their own
	// postings (SELF_APPLICATION); a second application for the same
	// (applicant, posting) pair yields CONFLICT.
	Apply(ctx context.Context,
		applicant domain.AccountID,
		companyID domain.CompanyID,
		postingID domain.PostingID,
		profile domain.ApplicantProfile) (*domain.JobApplication, error)
	// Application returns one application. Readable only by the original
	// applicant or the company owner; the full chain, including the
	// application's denormalized company snapshot, is re-validated.
	Application(ctx context.Context,
		actor domain.AccountID,
		companyID domain.CompanyID,
		postingID domain.PostingID,
		applicationID domain.ApplicationID) (*domain.JobApplication, error)
	// PostingApplications lists a posting's applications. Owner only.
	PostingApplications(ctx context.Context,
		actor domain.AccountID,
		companyID domain.CompanyID,
		postingID domain.PostingID) ([]domain.JobApplication, error)
	// SetApplicationStatus transitions an application's status. Owner only,
	// full chain validated. Terminal statuses are immutable: re-setting the
	// current status is an idempotent no-op, any other transition away from a
	// terminal status yields CONFLICT. Unknown status strings yield VALIDATION.
	SetApplicationStatus(ctx context.Context,
		actor domain.AccountID,
		companyID domain.CompanyID,
		postingID domain.PostingID,
		applicationID domain.ApplicationID,
		status string) (*domain.JobApplication, error)
}

// Service aggregates the full recruitment core surface.
type Service interface {
	Accounts
	Companies
	Postings
	Applications
}
