package storage

import (
	"context"
	"recruit/pkg/domain"
)

// JobPostUpdates describes a set of optional fields that can be applied to an
// existing job posting. Only non-nil fields are updated. The owning company
// reference is immutable and intentionally absent here.
type JobPostUpdates struct {
	Title       *string
	Type        *domain.JobType
	State       *string
	Country     *string
	Description *string
	SalaryRange *string
}

// JobPostStorage defines CRUD and query operations for job postings.
type JobPostStorage interface {
	// StoreJobPost inserts a new posting and returns the stored row.
	StoreJobPost(ctx context.Context, post domain.JobPost) (*domain.JobPost, error)
	// JobPostByID fetches a posting by its ID. Returns nil when not found.
	JobPostByID(ctx context.Context, id domain.PostingID) (*domain.JobPost, error)
	// JobPosts returns all postings across all companies, newest first.
	JobPosts(ctx context.Context) ([]domain.JobPost, error)
	// JobPostsByCompany returns the postings owned by the given company.
	JobPostsByCompany(ctx context.Context, companyID domain.CompanyID) ([]domain.JobPost, error)
	// UpdateJobPost applies the provided field set and returns the updated row,
	// or nil when the posting does not exist.
	UpdateJobPost(ctx context.Context, id domain.PostingID, updates JobPostUpdates) (*domain.JobPost, error)
	// DeleteJobPost removes the posting, cascading to its applications. It
	// reports whether a row was deleted.
	DeleteJobPost(ctx context.Context, id domain.PostingID) (bool, error)
}
