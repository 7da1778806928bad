package postgres

import (
	"context"
	"fmt"
	"recruit/pkg/domain"
	"recruit/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const jobPostsTable = "job_posts"

func (p *PgSQL) StoreJobPost(ctx context.Context, post domain.JobPost) (*domain.JobPost, error) {
	var row PgJobPost
	row.FromDomain(post)

	var result PgJobPost
	found, err := p.Builder.Insert(jobPostsTable).
		Rows(row).
		Returning(&PgJobPost{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store job post into pg: %w", translateConstraint(err))
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", jobPostsTable)
	}

	return result.ToDomain(), nil
}

// JobPostByID fetches a posting by its primary key.
func (p *PgSQL) JobPostByID(ctx context.Context, id domain.PostingID) (*domain.JobPost, error) {
	var row PgJobPost
	found, err := p.Builder.From(jobPostsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch job post by id: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// JobPosts returns all postings across all companies, newest first.
func (p *PgSQL) JobPosts(ctx context.Context) ([]domain.JobPost, error) {
	var rows []PgJobPost
	if err := p.Builder.From(jobPostsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch job posts from pg: %w", err)
	}

	return pgJobPostsToDomain(rows), nil
}

// JobPostsByCompany returns the postings owned by the given company, newest first.
func (p *PgSQL) JobPostsByCompany(ctx context.Context, companyID domain.CompanyID) ([]domain.JobPost, error) {
	var rows []PgJobPost
	if err := p.Builder.From(jobPostsTable).
		Where(goqu.I("company_id").Eq(uuid.UUID(companyID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch job posts by company from pg: %w", err)
	}

	return pgJobPostsToDomain(rows), nil
}

// UpdateJobPost applies the provided field updates. The owning company
// reference is immutable and never part of the update set.
func (p *PgSQL) UpdateJobPost(ctx context.Context,
	id domain.PostingID,
	updates storage.JobPostUpdates) (*domain.JobPost, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Title != nil {
		rec["title"] = *updates.Title
	}
	if updates.Type != nil {
		rec["job_type"] = string(*updates.Type)
	}
	if updates.State != nil {
		rec["state"] = *updates.State
	}
	if updates.Country != nil {
		rec["country"] = *updates.Country
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}
	if updates.SalaryRange != nil {
		rec["salary_range"] = *updates.SalaryRange
	}

	var row PgJobPost
	found, err := p.Builder.Update(jobPostsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgJobPost{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update job post in pg: %w", translateConstraint(err))
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// DeleteJobPost removes the posting row. Its applications are removed by the
// ON DELETE CASCADE constraint in the same statement.
func (p *PgSQL) DeleteJobPost(ctx context.Context, id domain.PostingID) (bool, error) {
	res, err := p.Builder.Delete(jobPostsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete job post in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
