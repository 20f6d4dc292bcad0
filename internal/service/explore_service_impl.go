package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pathsense/internal/explore"
	"github.com/alexanderramin/pathsense/internal/importer"
)

type exploreService struct {
	provider explore.Provider
	tracker  TrackerService
	observer UseCaseObserver
}

func NewExploreService(provider explore.Provider, tracker TrackerService, observers ...UseCaseObserver) ExploreService {
	return &exploreService{
		provider: provider,
		tracker:  tracker,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Explore asks the provider for candidates. A provider failure is returned
// as is and no roadmap is touched.
func (s *exploreService) Explore(ctx context.Context, profile explore.Profile) (paths []importer.CareerPathImport, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"goal": profile.Goal}
	defer func() {
		fields["candidate_count"] = len(paths)
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "explore",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	return s.provider.Explore(ctx, profile)
}

// Choose explores with profile and binds the candidate whose role matches.
func (s *exploreService) Choose(ctx context.Context, user string, profile explore.Profile, role string) (*ChooseResult, error) {
	paths, err := s.Explore(ctx, profile)
	if err != nil {
		return nil, err
	}
	path, err := explore.FindPath(paths, role)
	if err != nil {
		return nil, err
	}
	return s.tracker.ChoosePath(ctx, user, path)
}
