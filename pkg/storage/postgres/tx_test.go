package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"pragency/pkg/domain"
	"pragency/pkg/storage"
	"pragency/pkg/storage/postgres"

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

	// Success path: inserts are visible after commit
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner := txStorage.(*postgres.PgSQL)

	stored, err := inner.StoreUser(ctx, testUserRow("commit@acme.example"))
	require.NoError(t, err)

	require.NoError(t, inner.Commit())

	fetched, err := pg.UserByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Error path: calling Rollback on non-tx
	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: rollback discards inserts
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner := txStorage.(*postgres.PgSQL)

	stored, err := inner.StoreUser(ctx, testUserRow("rollback@acme.example"))
	require.NoError(t, err)

	require.NoError(t, inner.Rollback())

	fetched, err := pg.UserByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Commit path: callback succeeds and the user persists
	var userID domain.UserID
	err := pg.WithTx(ctx, func(strg storage.AllStorage) error {
		user, err := strg.StoreUser(ctx, testUserRow("withtx@acme.example"))
		if err != nil {
			return err
		}
		userID = user.ID

		return nil
	})
	require.NoError(t, err)

	fetched, err := pg.UserByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, fetched)

	// Rollback path: callback error discards the insert
	sentinel := errors.New("boom")
	err = pg.WithTx(ctx, func(strg storage.AllStorage) error {
		if _, err := strg.StoreUser(ctx, testUserRow("discarded@acme.example")); err != nil {
			return err
		}

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	discarded, err := pg.UserByEmail(ctx, "discarded@acme.example")
	require.NoError(t, err)
	require.Nil(t, discarded)
}
