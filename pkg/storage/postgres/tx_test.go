package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"recruit/pkg/domain"
	"recruit/pkg/storage"
	"recruit/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	// Cleanup the opened transaction
	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Error path: calling Commit on non-tx
	err := pg.Commit()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: commit an insert
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreAccount(ctx, domain.Account{
		Email:        "tx@example.com",
		PasswordHash: "x",
	})
	require.NoError(t, err)

	require.NoError(t, txStorage.Commit())

	// Verify persistence outside tx
	account, err := pg.AccountByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
	require.NotNil(t, account)
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Error path: calling Rollback on non-tx
	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: rolled back insert is discarded
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreAccount(ctx, domain.Account{
		Email:        "rollback@example.com",
		PasswordHash: "x",
	})
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())

	account, err := pg.AccountByEmail(ctx, "rollback@example.com")
	require.NoError(t, err)
	require.Nil(t, account)
}
