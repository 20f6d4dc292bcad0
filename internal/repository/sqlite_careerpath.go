package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pathsense/internal/codec"
	"github.com/alexanderramin/pathsense/internal/db"
	"github.com/alexanderramin/pathsense/internal/domain"
)

// SQLiteCareerPathRepo implements CareerPathRepo using a SQLite database.
// Roadmaps are stored in the codec encoding.
type SQLiteCareerPathRepo struct {
	db db.DBTX
}

// NewSQLiteCareerPathRepo creates a new SQLiteCareerPathRepo.
func NewSQLiteCareerPathRepo(conn db.DBTX) *SQLiteCareerPathRepo {
	return &SQLiteCareerPathRepo{db: conn}
}

const careerPathColumns = `id, user, goal, chosen_role, roadmap, active, created_at, updated_at`

func (r *SQLiteCareerPathRepo) Create(ctx context.Context, rec *domain.CareerPathRecord) error {
	encoded, err := codec.Encode(rec.Roadmap)
	if err != nil {
		return fmt.Errorf("encoding career path roadmap: %w", err)
	}
	query := `INSERT INTO career_paths (id, user, goal, chosen_role, roadmap, active, created_at, updated_at, encoding_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		rec.User,
		rec.Goal,
		rec.ChosenRole,
		encoded,
		boolToInt(rec.Active),
		rec.CreatedAt.Format(time.RFC3339),
		rec.UpdatedAt.Format(time.RFC3339),
		codec.Version,
	)
	if err != nil {
		return fmt.Errorf("inserting career path: %w", err)
	}
	return nil
}

func (r *SQLiteCareerPathRepo) GetActive(ctx context.Context, user string) (*domain.CareerPathRecord, error) {
	query := `SELECT ` + careerPathColumns + ` FROM career_paths WHERE user = ? AND active = 1`
	return r.scanCareerPath(r.db.QueryRowContext(ctx, query, user))
}

// ListByUser returns every path the user has chosen, oldest first.
func (r *SQLiteCareerPathRepo) ListByUser(ctx context.Context, user string) ([]*domain.CareerPathRecord, error) {
	query := `SELECT ` + careerPathColumns + ` FROM career_paths WHERE user = ? ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, user)
	if err != nil {
		return nil, fmt.Errorf("listing career paths: %w", err)
	}
	defer rows.Close()

	var records []*domain.CareerPathRecord
	for rows.Next() {
		rec, err := r.scanCareerPath(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating career paths: %w", err)
	}
	return records, nil
}

func (r *SQLiteCareerPathRepo) UpdateRoadmap(ctx context.Context, id string, roadmap *domain.Roadmap) error {
	encoded, err := codec.Encode(roadmap)
	if err != nil {
		return fmt.Errorf("encoding career path roadmap: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE career_paths SET roadmap = ?, encoding_version = ?, updated_at = ? WHERE id = ?`,
		encoded, codec.Version, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating career path roadmap: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated career path: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("career path %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCareerPathRepo) DeactivateAll(ctx context.Context, user string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE career_paths SET active = 0, updated_at = ? WHERE user = ? AND active = 1`,
		nowUTC(), user)
	if err != nil {
		return fmt.Errorf("deactivating career paths: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteCareerPathRepo) scanCareerPath(row scanner) (*domain.CareerPathRecord, error) {
	var rec domain.CareerPathRecord
	var encoded []byte
	var activeInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&rec.ID, &rec.User, &rec.Goal, &rec.ChosenRole, &encoded,
		&activeInt, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("career path: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning career path: %w", err)
	}

	roadmap, err := codec.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("career path %s: %w", rec.ID, err)
	}
	rec.Roadmap = roadmap
	rec.Active = intToBool(activeInt)
	rec.CreatedAt = parseTime(createdAtStr)
	rec.UpdatedAt = parseTime(updatedAtStr)
	return &rec, nil
}
