package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pathsense/internal/codec"
	"github.com/alexanderramin/pathsense/internal/db"
	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/alexanderramin/pathsense/internal/importer"
	"github.com/alexanderramin/pathsense/internal/progress"
	"github.com/alexanderramin/pathsense/internal/repository"
	"github.com/alexanderramin/pathsense/internal/store"
	"github.com/google/uuid"
)

type trackerService struct {
	paths    repository.CareerPathRepo
	states   repository.SessionStateRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTrackerService(
	paths repository.CareerPathRepo,
	states repository.SessionStateRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TrackerService {
	return &trackerService{
		paths:    paths,
		states:   states,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *trackerService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *trackerService) ChoosePath(ctx context.Context, user string, path *importer.CareerPathImport) (result *ChooseResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": user}
	defer func() { s.observe(ctx, "choose-path", startedAt, fields, err) }()

	if err = validateUser(user); err != nil {
		return nil, err
	}
	var roadmap *domain.Roadmap
	roadmap, err = importer.Build(path)
	if err != nil {
		return nil, err
	}
	fields["role"] = roadmap.ChosenRole
	fields["module_count"] = len(roadmap.Modules)
	fields["topic_count"] = roadmap.TopicCount()

	return s.bind(ctx, user, roadmap)
}

func (s *trackerService) Import(ctx context.Context, user string, data []byte) (result *ChooseResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": user, "bytes": len(data)}
	defer func() { s.observe(ctx, "import-roadmap", startedAt, fields, err) }()

	if err = validateUser(user); err != nil {
		return nil, err
	}
	var roadmap *domain.Roadmap
	roadmap, err = codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding roadmap: %w", err)
	}
	fields["role"] = roadmap.ChosenRole

	return s.bind(ctx, user, roadmap)
}

// bind makes roadmap the learner's active path. The previous path is kept
// for history but deactivated; its progress does not carry over.
func (s *trackerService) bind(ctx context.Context, user string, roadmap *domain.Roadmap) (*ChooseResult, error) {
	var result *ChooseResult
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPaths := repository.NewSQLiteCareerPathRepo(tx)
		txStates := repository.NewSQLiteSessionStateRepo(tx)

		learner, err := loadLearner(ctx, txPaths, txStates, user)
		if err != nil {
			return err
		}
		if err := learner.session.ChoosePath(roadmap); err != nil {
			return err
		}
		bound, _ := learner.store().Current()

		if err := txPaths.DeactivateAll(ctx, user); err != nil {
			return err
		}
		now := time.Now().UTC()
		rec := &domain.CareerPathRecord{
			ID:         uuid.New().String(),
			User:       user,
			Goal:       bound.Goal,
			ChosenRole: bound.ChosenRole,
			Roadmap:    bound,
			Active:     true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := txPaths.Create(ctx, rec); err != nil {
			return err
		}
		if err := txStates.Upsert(ctx, user, learner.session.Phase()); err != nil {
			return err
		}

		snap, err := learner.store().Progress()
		if err != nil {
			return err
		}
		result = &ChooseResult{Record: rec, Phase: learner.session.Phase(), Progress: snap}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *trackerService) Roadmap(ctx context.Context, user string) (*domain.Roadmap, error) {
	learner, err := loadLearner(ctx, s.paths, s.states, user)
	if err != nil {
		return nil, err
	}
	r, ok := learner.store().Current()
	if !ok {
		return nil, &domain.NoActiveRoadmapError{Op: "roadmap"}
	}
	return r, nil
}

func (s *trackerService) Topic(ctx context.Context, user string, moduleIdx, topicIdx int) (domain.Topic, error) {
	learner, err := loadLearner(ctx, s.paths, s.states, user)
	if err != nil {
		return domain.Topic{}, err
	}
	return learner.store().Topic(moduleIdx, topicIdx)
}

func (s *trackerService) ToggleTopic(ctx context.Context, user string, moduleIdx, topicIdx int) (result *ToggleResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": user, "module": moduleIdx, "topic": topicIdx}
	defer func() { s.observe(ctx, "toggle-topic", startedAt, fields, err) }()

	result, err = s.mutateTopic(ctx, user, moduleIdx, topicIdx, func(st *store.RoadmapStore) error {
		return st.ToggleTopic(moduleIdx, topicIdx)
	})
	if result != nil {
		fields["completed"] = result.Completed
	}
	return result, err
}

func (s *trackerService) SetTopic(ctx context.Context, user string, moduleIdx, topicIdx int, completed bool) (result *ToggleResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": user, "module": moduleIdx, "topic": topicIdx, "completed": completed}
	defer func() { s.observe(ctx, "set-topic", startedAt, fields, err) }()

	return s.mutateTopic(ctx, user, moduleIdx, topicIdx, func(st *store.RoadmapStore) error {
		return st.SetTopicCompleted(moduleIdx, topicIdx, completed)
	})
}

// mutateTopic applies change to the learner's store and writes the roadmap
// back. A rejected change writes nothing.
func (s *trackerService) mutateTopic(ctx context.Context, user string, moduleIdx, topicIdx int, change func(*store.RoadmapStore) error) (*ToggleResult, error) {
	var result *ToggleResult
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPaths := repository.NewSQLiteCareerPathRepo(tx)
		txStates := repository.NewSQLiteSessionStateRepo(tx)

		learner, err := loadLearner(ctx, txPaths, txStates, user)
		if err != nil {
			return err
		}
		st := learner.store()
		before := st.Revision()
		if err := change(st); err != nil {
			return err
		}

		current, _ := st.Current()
		if st.Revision() != before {
			if err := txPaths.UpdateRoadmap(ctx, learner.record.ID, current); err != nil {
				return err
			}
		}

		snap, err := st.Progress()
		if err != nil {
			return err
		}
		topic := current.Modules[moduleIdx].Topics[topicIdx]
		result = &ToggleResult{
			Module:    moduleIdx,
			Topic:     topicIdx,
			Title:     topic.Title,
			Completed: topic.Completed,
			Progress:  snap,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *trackerService) Progress(ctx context.Context, user string) (*progress.Snapshot, error) {
	learner, err := loadLearner(ctx, s.paths, s.states, user)
	if err != nil {
		return nil, err
	}
	snap, err := learner.store().Progress()
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *trackerService) Phase(ctx context.Context, user string) (domain.SessionPhase, error) {
	learner, err := loadLearner(ctx, s.paths, s.states, user)
	if err != nil {
		return "", err
	}
	return learner.session.Phase(), nil
}

func (s *trackerService) SetPhase(ctx context.Context, user string, phase domain.SessionPhase) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": user, "phase": string(phase)}
	defer func() { s.observe(ctx, "set-phase", startedAt, fields, err) }()

	if err = validateUser(user); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPaths := repository.NewSQLiteCareerPathRepo(tx)
		txStates := repository.NewSQLiteSessionStateRepo(tx)

		learner, err := loadLearner(ctx, txPaths, txStates, user)
		if err != nil {
			return err
		}
		if err := learner.session.Transition(phase); err != nil {
			return err
		}
		return txStates.Upsert(ctx, user, learner.session.Phase())
	})
}

func (s *trackerService) Export(ctx context.Context, user string) ([]byte, error) {
	r, err := s.Roadmap(ctx, user)
	if err != nil {
		return nil, err
	}
	data, err := codec.Encode(r)
	if err != nil {
		return nil, fmt.Errorf("encoding roadmap: %w", err)
	}
	return data, nil
}

func (s *trackerService) History(ctx context.Context, user string) ([]*domain.CareerPathRecord, error) {
	records, err := s.paths.ListByUser(ctx, user)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*domain.CareerPathRecord{}
	}
	return records, nil
}

