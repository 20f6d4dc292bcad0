// Package store owns the roadmap bound to a learning session. It is the only
// place a bound roadmap is mutated.
package store

import (
	"slices"
	"sync"

	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/alexanderramin/pathsense/internal/progress"
)

// RoadmapStore holds at most one roadmap. Writes are serialized; readers get
// deep copies or derived values and never see a partial write.
type RoadmapStore struct {
	mu       sync.RWMutex
	roadmap  *domain.Roadmap
	revision uint64
}

// New returns an empty store.
func New() *RoadmapStore {
	return &RoadmapStore{}
}

// Bind replaces the bound roadmap with a private copy of r. Binding nil
// unbinds. Snapshots taken before the call become stale.
func (s *RoadmapStore) Bind(r *domain.Roadmap) {
	owned := r.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roadmap = owned
	s.revision++
}

// Current returns a copy of the bound roadmap, or false when none is bound.
func (s *RoadmapStore) Current() (*domain.Roadmap, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.roadmap == nil {
		return nil, false
	}
	return s.roadmap.Clone(), true
}

// HasActiveRoadmap reports whether a roadmap is bound.
func (s *RoadmapStore) HasActiveRoadmap() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roadmap != nil
}

// Revision returns a counter bumped by every Bind and every successful
// topic mutation.
func (s *RoadmapStore) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Topic returns a copy of one topic, validating the indexes the same way
// ToggleTopic does.
func (s *RoadmapStore) Topic(moduleIdx, topicIdx int) (domain.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topic, err := s.locate("read topic", moduleIdx, topicIdx)
	if err != nil {
		return domain.Topic{}, err
	}
	out := *topic
	out.Resources = slices.Clone(topic.Resources)
	return out, nil
}

// ToggleTopic flips the completion flag of one topic. On error nothing changes.
func (s *RoadmapStore) ToggleTopic(moduleIdx, topicIdx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	topic, err := s.locate("toggle topic", moduleIdx, topicIdx)
	if err != nil {
		return err
	}
	topic.Completed = !topic.Completed
	s.revision++
	return nil
}

// SetTopicCompleted sets the completion flag of one topic to completed.
// Setting a flag to its current value is a successful no-op and does not
// bump the revision.
func (s *RoadmapStore) SetTopicCompleted(moduleIdx, topicIdx int, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	topic, err := s.locate("set topic", moduleIdx, topicIdx)
	if err != nil {
		return err
	}
	if topic.Completed != completed {
		topic.Completed = completed
		s.revision++
	}
	return nil
}

// Progress computes a snapshot of the bound roadmap under the read lock.
func (s *RoadmapStore) Progress() (progress.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.roadmap == nil {
		return progress.Snapshot{}, &domain.NoActiveRoadmapError{Op: "compute progress"}
	}
	snap := progress.Compute(s.roadmap)
	snap.Revision = s.revision
	return snap, nil
}

// IsStale reports whether snap was taken before the latest bind or mutation.
func (s *RoadmapStore) IsStale(snap progress.Snapshot) bool {
	return snap.Revision != s.Revision()
}

// locate validates both indexes and returns the addressed topic in place.
// Caller must hold the lock; writing through the pointer needs the write lock.
func (s *RoadmapStore) locate(op string, moduleIdx, topicIdx int) (*domain.Topic, error) {
	if s.roadmap == nil {
		return nil, &domain.NoActiveRoadmapError{Op: op}
	}
	modules := s.roadmap.Modules
	if moduleIdx < 0 || moduleIdx >= len(modules) {
		return nil, &domain.IndexOutOfRangeError{
			Module:      moduleIdx,
			Topic:       topicIdx,
			ModuleCount: len(modules),
			TopicCount:  -1,
		}
	}
	topics := modules[moduleIdx].Topics
	if topicIdx < 0 || topicIdx >= len(topics) {
		return nil, &domain.IndexOutOfRangeError{
			Module:      moduleIdx,
			Topic:       topicIdx,
			ModuleCount: len(modules),
			TopicCount:  len(topics),
		}
	}
	return &topics[topicIdx], nil
}
