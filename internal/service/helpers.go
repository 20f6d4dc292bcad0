package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/alexanderramin/pathsense/internal/repository"
	"github.com/alexanderramin/pathsense/internal/session"
	"github.com/alexanderramin/pathsense/internal/store"
)

// learnerState is a learner's session rebuilt from storage. record is nil
// when the learner has not chosen a path yet.
type learnerState struct {
	record  *domain.CareerPathRecord
	session *session.Session
}

func (l *learnerState) store() *store.RoadmapStore {
	return l.session.Store()
}

// loadLearner binds the active path, if any, to a fresh store and restores
// the stored phase around it.
func loadLearner(ctx context.Context, paths repository.CareerPathRepo, states repository.SessionStateRepo, user string) (*learnerState, error) {
	st := store.New()
	rec, err := paths.GetActive(ctx, user)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		rec = nil
	case err != nil:
		return nil, fmt.Errorf("loading active career path: %w", err)
	default:
		st.Bind(rec.Roadmap)
	}

	phase, err := states.Get(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("loading session phase: %w", err)
	}
	return &learnerState{record: rec, session: session.Restore(st, phase)}, nil
}

func validateUser(user string) error {
	if strings.TrimSpace(user) == "" {
		return &domain.MalformedInputError{Problems: []string{"user is required"}}
	}
	return nil
}
