package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/pathsense/internal/domain"
)

// ErrNotFound is wrapped by repository lookups that match no row.
var ErrNotFound = errors.New("not found")

type CareerPathRepo interface {
	Create(ctx context.Context, rec *domain.CareerPathRecord) error
	GetActive(ctx context.Context, user string) (*domain.CareerPathRecord, error)
	ListByUser(ctx context.Context, user string) ([]*domain.CareerPathRecord, error)
	UpdateRoadmap(ctx context.Context, id string, r *domain.Roadmap) error
	DeactivateAll(ctx context.Context, user string) error
}

type SessionStateRepo interface {
	// Get returns the stored phase, or exploring when the user has none.
	Get(ctx context.Context, user string) (domain.SessionPhase, error)
	Upsert(ctx context.Context, user string, phase domain.SessionPhase) error
}
