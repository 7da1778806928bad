package postgres

import (
	"context"
	"fmt"
	"recruit/pkg/domain"
	"recruit/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const companiesTable = "companies"

func (p *PgSQL) StoreCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	var row PgCompany
	row.FromDomain(company)

	var result PgCompany
	found, err := p.Builder.Insert(companiesTable).
		Rows(row).
		Returning(&PgCompany{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store company into pg: %w", translateConstraint(err))
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", companiesTable)
	}

	return result.ToDomain(), nil
}

// CompanyByID fetches a company by its primary key.
func (p *PgSQL) CompanyByID(ctx context.Context, id domain.CompanyID) (*domain.Company, error) {
	var row PgCompany
	found, err := p.Builder.From(companiesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch company by id: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// CompanyByName fetches a company by name, matched case-insensitively to agree
// with the unique index on lower(name).
func (p *PgSQL) CompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	var row PgCompany
	found, err := p.Builder.From(companiesTable).
		Where(goqu.L("lower(name)").Eq(goqu.L("lower(?)", name))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch company by name: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// Companies returns all companies ordered by creation time.
func (p *PgSQL) Companies(ctx context.Context) ([]domain.Company, error) {
	var rows []PgCompany
	if err := p.Builder.From(companiesTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch companies from pg: %w", err)
	}

	return pgCompaniesToDomain(rows), nil
}

// CompaniesByOwner returns the companies owned by the given account.
func (p *PgSQL) CompaniesByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Company, error) {
	var rows []PgCompany
	if err := p.Builder.From(companiesTable).
		Where(goqu.I("created_by").Eq(uuid.UUID(owner))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch companies by owner from pg: %w", err)
	}

	return pgCompaniesToDomain(rows), nil
}

// UpdateCompany applies the provided field updates. Only non-nil fields are
// set; an empty LogoKey clears the stored handle.
func (p *PgSQL) UpdateCompany(ctx context.Context,
	id domain.CompanyID,
	updates storage.CompanyUpdates) (*domain.Company, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Website != nil {
		rec["website"] = *updates.Website
	}
	if updates.Street != nil {
		rec["street"] = *updates.Street
	}
	if updates.City != nil {
		rec["city"] = *updates.City
	}
	if updates.Pincode != nil {
		rec["pincode"] = *updates.Pincode
	}
	if updates.SupportEmail != nil {
		rec["support_email"] = *updates.SupportEmail
	}
	if updates.LogoKey != nil {
		if *updates.LogoKey == "" {
			// clear the handle when an empty string is provided
			rec["logo_key"] = goqu.L("NULL")
		} else {
			rec["logo_key"] = *updates.LogoKey
		}
	}

	var row PgCompany
	found, err := p.Builder.Update(companiesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgCompany{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update company in pg: %w", translateConstraint(err))
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// DeleteCompany removes the company row and returns it. Postings under the
// company and their applications are removed by the ON DELETE CASCADE
// constraints in the same statement, so the cascade can never be observed
// half-applied.
func (p *PgSQL) DeleteCompany(ctx context.Context, id domain.CompanyID) (*domain.Company, error) {
	var row PgCompany
	found, err := p.Builder.Delete(companiesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgCompany{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete company in pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}
