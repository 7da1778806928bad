package storage

import (
	"context"
	"recruit/pkg/domain"
)

// CompanyUpdates describes a set of optional fields that can be applied to an
// existing company. Only non-nil fields are updated. An empty-string LogoKey
// clears the stored logo handle.
type CompanyUpdates struct {
	Name         *string
	Website      *string
	Street       *string
	City         *string
	Pincode      *string
	SupportEmail *string
	LogoKey      *string
}

// CompanyStorage defines CRUD and query operations for companies. The
// case-insensitive unique constraint on the company name lives in the store
// and is the authoritative guard against duplicate names; StoreCompany and
// UpdateCompany surface violations as CONFLICT errors.
type CompanyStorage interface {
	// StoreCompany inserts a new company and returns the stored row. A
	// duplicate name yields a CONFLICT error.
	StoreCompany(ctx context.Context, company domain.Company) (*domain.Company, error)
	// CompanyByID fetches a company by its ID. Returns nil when not found.
	CompanyByID(ctx context.Context, id domain.CompanyID) (*domain.Company, error)
	// CompanyByName fetches a company by its name, matched case-insensitively.
	// Returns nil when not found.
	CompanyByName(ctx context.Context, name string) (*domain.Company, error)
	// Companies returns all companies ordered by creation time.
	Companies(ctx context.Context) ([]domain.Company, error)
	// CompaniesByOwner returns the companies owned by the given account.
	CompaniesByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Company, error)
	// UpdateCompany applies the provided field set and returns the updated row,
	// or nil when the company does not exist.
	UpdateCompany(ctx context.Context, id domain.CompanyID, updates CompanyUpdates) (*domain.Company, error)
	// DeleteCompany removes the company, cascading to its postings and their
	// applications, and returns the deleted row or nil when not found.
	DeleteCompany(ctx context.Context, id domain.CompanyID) (*domain.Company, error)
}
