package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/pathsense/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

const insertPhase = `INSERT INTO session_state (user, phase, updated_at) VALUES (?, ?, '2025-01-01T00:00:00Z')`

// readPhase reads the stored phase for user inside its own transaction.
func readPhase(uow *db.SQLiteUnitOfWork, user string) (string, bool) {
	var phase string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT phase FROM session_state WHERE user = ?`, user)
		if err := row.Scan(&phase); err != nil {
			return nil // not found
		}
		found = true
		return nil
	})
	return phase, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertPhase, "ada", "learning")
		return err
	})
	require.NoError(t, err)

	phase, found := readPhase(uow, "ada")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "learning", phase)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertPhase, "grace", "learning"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readPhase(uow, "grace")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertPhase, "linus", "achieving")
			panic("boom")
		})
	})

	_, found := readPhase(uow, "linus")
	assert.False(t, found, "row should not exist after panic rollback")
}

func TestWithinTx_ConstraintViolationRollsBackEarlierWrites(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertPhase, "ken", "learning"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insertPhase, "ken2", "graduating")
		return err
	})
	require.Error(t, err)

	_, found := readPhase(uow, "ken")
	assert.False(t, found)
}
