package service

import (
	"context"

	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/alexanderramin/pathsense/internal/explore"
	"github.com/alexanderramin/pathsense/internal/importer"
	"github.com/alexanderramin/pathsense/internal/progress"
)

// TrackerService runs the roadmap use cases for one learner at a time. Each
// call rebuilds the learner's session from storage, applies one operation
// and writes the result back in a single transaction.
type TrackerService interface {
	ChoosePath(ctx context.Context, user string, path *importer.CareerPathImport) (*ChooseResult, error)
	Roadmap(ctx context.Context, user string) (*domain.Roadmap, error)
	Topic(ctx context.Context, user string, moduleIdx, topicIdx int) (domain.Topic, error)
	ToggleTopic(ctx context.Context, user string, moduleIdx, topicIdx int) (*ToggleResult, error)
	SetTopic(ctx context.Context, user string, moduleIdx, topicIdx int, completed bool) (*ToggleResult, error)
	Progress(ctx context.Context, user string) (*progress.Snapshot, error)
	Phase(ctx context.Context, user string) (domain.SessionPhase, error)
	SetPhase(ctx context.Context, user string, phase domain.SessionPhase) error
	Export(ctx context.Context, user string) ([]byte, error)
	Import(ctx context.Context, user string, data []byte) (*ChooseResult, error)
	History(ctx context.Context, user string) ([]*domain.CareerPathRecord, error)
}

type ExploreService interface {
	Explore(ctx context.Context, profile explore.Profile) ([]importer.CareerPathImport, error)
	Choose(ctx context.Context, user string, profile explore.Profile, role string) (*ChooseResult, error)
}

// ChooseResult holds the outcome of binding a new roadmap.
type ChooseResult struct {
	Record   *domain.CareerPathRecord
	Phase    domain.SessionPhase
	Progress progress.Snapshot
}

// ToggleResult holds the outcome of a topic completion change.
type ToggleResult struct {
	Module    int
	Topic     int
	Title     string
	Completed bool
	Progress  progress.Snapshot
}
