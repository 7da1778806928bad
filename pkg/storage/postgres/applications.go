package postgres

import (
	"context"
	"fmt"
	"recruit/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const applicationsTable = "job_applications"

func (p *PgSQL) StoreApplication(ctx context.Context, app domain.JobApplication) (*domain.JobApplication, error) {
	var row PgApplication
	if err := row.FromDomain(app); err != nil {
		return nil, err
	}

	var result PgApplication
	found, err := p.Builder.Insert(applicationsTable).
		Rows(row).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		// the unique (applicant_id, job_post_id) constraint is the
		// authoritative duplicate-application guard
		return nil, fmt.Errorf("could not store application into pg: %w", translateConstraint(err))
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", applicationsTable)
	}

	return result.ToDomain()
}

// ApplicationByID fetches an application by its primary key.
func (p *PgSQL) ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.JobApplication, error) {
	var row PgApplication
	found, err := p.Builder.From(applicationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch application by id: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain()
}

// ApplicationsByApplicant returns all applications submitted by the given
// account, newest first.
func (p *PgSQL) ApplicationsByApplicant(ctx context.Context,
	applicant domain.AccountID) ([]domain.JobApplication, error) {
	var rows []PgApplication
	if err := p.Builder.From(applicationsTable).
		Where(goqu.I("applicant_id").Eq(uuid.UUID(applicant))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch applications by applicant from pg: %w", err)
	}

	return pgApplicationsToDomain(rows)
}

// ApplicationsByPosting returns all applications for the given company and
// posting pair, oldest first.
func (p *PgSQL) ApplicationsByPosting(ctx context.Context,
	companyID domain.CompanyID,
	postingID domain.PostingID) ([]domain.JobApplication, error) {
	var rows []PgApplication
	if err := p.Builder.From(applicationsTable).
		Where(
			goqu.I("company_id").Eq(uuid.UUID(companyID)),
			goqu.I("job_post_id").Eq(uuid.UUID(postingID)),
		).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch applications by posting from pg: %w", err)
	}

	return pgApplicationsToDomain(rows)
}

// ApplicationExists reports whether the applicant already has an application
// for the posting. This only serves the friendly pre-check; the unique
// constraint remains the authoritative guard.
func (p *PgSQL) ApplicationExists(ctx context.Context,
	applicant domain.AccountID,
	postingID domain.PostingID) (bool, error) {
	count, err := p.Builder.From(applicationsTable).
		Where(
			goqu.I("applicant_id").Eq(uuid.UUID(applicant)),
			goqu.I("job_post_id").Eq(uuid.UUID(postingID)),
		).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not check application existence in pg: %w", err)
	}

	return count > 0, nil
}

// UpdateApplicationStatus sets the status of the application and returns the
// updated row, or nil when the application does not exist.
func (p *PgSQL) UpdateApplicationStatus(ctx context.Context,
	id domain.ApplicationID,
	status domain.ApplicationStatus) (*domain.JobApplication, error) {
	var row PgApplication
	found, err := p.Builder.Update(applicationsTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update application status in pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain()
}
