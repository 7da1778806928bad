package postgres

import (
	"context"
	"fmt"
	"recruit/pkg/domain"
	"recruit/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const accountsTable = "accounts"

func (p *PgSQL) StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var row PgAccount
	row.FromDomain(account)

	var result PgAccount
	found, err := p.Builder.Insert(accountsTable).
		Rows(row).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store account into pg: %w", translateConstraint(err))
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", accountsTable)
	}

	return result.ToDomain(), nil
}

// AccountByID fetches an account by its primary key.
func (p *PgSQL) AccountByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account by id: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// AccountByEmail fetches an account by its unique email.
func (p *PgSQL) AccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(goqu.L("lower(email)").Eq(goqu.L("lower(?)", email))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account by email: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// UpdateAccount applies the provided profile updates. Only non-nil fields are
// set and updated_at is bumped automatically.
func (p *PgSQL) UpdateAccount(ctx context.Context,
	id domain.AccountID,
	updates storage.AccountUpdates) (*domain.Account, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.FullName != nil {
		rec["full_name"] = *updates.FullName
	}
	if updates.Phone != nil {
		rec["phone"] = *updates.Phone
	}
	if updates.Location != nil {
		rec["location"] = *updates.Location
	}
	if updates.Linkedin != nil {
		rec["linkedin"] = *updates.Linkedin
	}
	if updates.PasswordHash != nil {
		rec["password_hash"] = *updates.PasswordHash
	}

	var row PgAccount
	found, err := p.Builder.Update(accountsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update account in pg: %w", translateConstraint(err))
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// DeleteAccount removes the account row. The ON DELETE CASCADE constraints
// take owned companies, created postings and dependent applications down with
// it in the same statement.
func (p *PgSQL) DeleteAccount(ctx context.Context, id domain.AccountID) (bool, error) {
	res, err := p.Builder.Delete(accountsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete account in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
