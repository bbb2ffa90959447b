package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTx_Commit(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	ctx := context.Background()

	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO goals (id, description, start_date, status, created_at, updated_at)
			 VALUES ('g1', 'test goal', '2024-01-01', 'in_progress', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM goals`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	ctx := context.Background()
	boom := errors.New("boom")

	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, execErr := tx.ExecContext(ctx,
			`INSERT INTO goals (id, description, start_date, status, created_at, updated_at)
			 VALUES ('g1', 'test goal', '2024-01-01', 'in_progress', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`); execErr != nil {
			return execErr
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The insert must have been rolled back.
	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM goals`).Scan(&count))
	assert.Equal(t, 0, count)
}
