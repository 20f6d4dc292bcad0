// Package session tracks which phase a learner is in and which roadmap, if
// any, is bound to them.
package session

import (
	"fmt"
	"sync"

	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/alexanderramin/pathsense/internal/store"
)

// Session is the phase state machine over exploring, learning and achieving.
// It has no terminal state.
type Session struct {
	mu    sync.Mutex
	phase domain.SessionPhase
	store *store.RoadmapStore
}

// New starts a session in the exploring phase around st.
func New(st *store.RoadmapStore) *Session {
	if st == nil {
		st = store.New()
	}
	return &Session{phase: domain.PhaseExploring, store: st}
}

// Restore rebuilds a session at a previously recorded phase. A phase that
// needs a roadmap falls back to exploring when none is bound, as does an
// unknown phase.
func Restore(st *store.RoadmapStore, phase domain.SessionPhase) *Session {
	s := New(st)
	if phase.Valid() && (!phase.RequiresRoadmap() || s.store.HasActiveRoadmap()) {
		s.phase = phase
	}
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() domain.SessionPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Store returns the roadmap store backing this session.
func (s *Session) Store() *store.RoadmapStore {
	return s.store
}

// HasActiveRoadmap reports whether a roadmap is bound. Callers use it to
// decide whether learning or achieving screens have anything to show.
func (s *Session) HasActiveRoadmap() bool {
	return s.store.HasActiveRoadmap()
}

// ChoosePath binds r, replacing any previous roadmap and its progress, and
// moves the session to learning.
func (s *Session) ChoosePath(r *domain.Roadmap) error {
	if r == nil {
		return &domain.MalformedInputError{Problems: []string{"roadmap is required"}}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Bind(r)
	s.phase = domain.PhaseLearning
	return nil
}

// Transition moves to phase to. Exploring is always reachable; learning and
// achieving need a bound roadmap. A rejected transition leaves the phase
// unchanged.
func (s *Session) Transition(to domain.SessionPhase) error {
	if !to.Valid() {
		return fmt.Errorf("unknown session phase %q", to)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if to.RequiresRoadmap() && !s.store.HasActiveRoadmap() {
		return &domain.NoActiveRoadmapError{Op: fmt.Sprintf("enter %s", to)}
	}
	s.phase = to
	return nil
}
