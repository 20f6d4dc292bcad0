package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/pathsense/internal/db"
	"github.com/alexanderramin/pathsense/internal/domain"
)

// SQLiteSessionStateRepo implements SessionStateRepo using a SQLite database.
type SQLiteSessionStateRepo struct {
	db db.DBTX
}

// NewSQLiteSessionStateRepo creates a new SQLiteSessionStateRepo.
func NewSQLiteSessionStateRepo(conn db.DBTX) *SQLiteSessionStateRepo {
	return &SQLiteSessionStateRepo{db: conn}
}

func (r *SQLiteSessionStateRepo) Get(ctx context.Context, user string) (domain.SessionPhase, error) {
	var phase string
	err := r.db.QueryRowContext(ctx, `SELECT phase FROM session_state WHERE user = ?`, user).Scan(&phase)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PhaseExploring, nil
		}
		return "", fmt.Errorf("reading session state: %w", err)
	}
	return domain.SessionPhase(phase), nil
}

func (r *SQLiteSessionStateRepo) Upsert(ctx context.Context, user string, phase domain.SessionPhase) error {
	query := `INSERT INTO session_state (user, phase, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user) DO UPDATE SET phase = excluded.phase, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, user, string(phase), nowUTC()); err != nil {
		return fmt.Errorf("upserting session state: %w", err)
	}
	return nil
}
