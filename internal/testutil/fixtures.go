package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/alexanderramin/pathsense/internal/importer"
	"github.com/google/uuid"
)

// Roadmap options
type RoadmapOption func(*domain.Roadmap)

// WithModule appends a module with the given topic titles. Each topic gets
// an empty resource list.
func WithModule(title string, topics ...string) RoadmapOption {
	return func(r *domain.Roadmap) {
		m := domain.Module{Title: title, Duration: "1 week", Topics: make([]domain.Topic, 0, len(topics))}
		for _, t := range topics {
			m.Topics = append(m.Topics, domain.Topic{Title: t, Resources: []string{}})
		}
		r.Modules = append(r.Modules, m)
	}
}

// WithCompleted marks topic (m, t) completed. Apply after the module exists.
func WithCompleted(m, t int) RoadmapOption {
	return func(r *domain.Roadmap) {
		r.Modules[m].Topics[t].Completed = true
	}
}

// WithGoal overrides the roadmap goal.
func WithGoal(goal string) RoadmapOption {
	return func(r *domain.Roadmap) {
		r.Goal = goal
	}
}

// NewTestRoadmap builds a roadmap for role. Without options it has one
// "Stats" module with topics "Probability" and "Bayes".
func NewTestRoadmap(role string, opts ...RoadmapOption) *domain.Roadmap {
	r := &domain.Roadmap{
		ChosenRole: role,
		Goal:       "switch careers",
		Modules:    []domain.Module{},
	}
	if len(opts) == 0 {
		opts = []RoadmapOption{WithModule("Stats", "Probability", "Bayes")}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Career path record options
type CareerPathOption func(*domain.CareerPathRecord)

func WithInactive() CareerPathOption {
	return func(rec *domain.CareerPathRecord) {
		rec.Active = false
	}
}

func WithCreatedAt(t time.Time) CareerPathOption {
	return func(rec *domain.CareerPathRecord) {
		rec.CreatedAt = t
		rec.UpdatedAt = t
	}
}

func WithRoadmap(r *domain.Roadmap) CareerPathOption {
	return func(rec *domain.CareerPathRecord) {
		rec.Roadmap = r
		rec.ChosenRole = r.ChosenRole
		rec.Goal = r.Goal
	}
}

// NewTestCareerPath builds an active record for user around a default roadmap.
func NewTestCareerPath(user, role string, opts ...CareerPathOption) *domain.CareerPathRecord {
	now := time.Now().UTC().Truncate(time.Second)
	r := NewTestRoadmap(role)
	rec := &domain.CareerPathRecord{
		ID:         uuid.New().String(),
		User:       user,
		Goal:       r.Goal,
		ChosenRole: role,
		Roadmap:    r,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(rec)
	}
	return rec
}

// NewTestPathImport returns an external career path with the given number of
// modules, each holding topicsPerModule topics.
func NewTestPathImport(role string, modules, topicsPerModule int) *importer.CareerPathImport {
	p := &importer.CareerPathImport{
		Role:    role,
		Goal:    "switch careers",
		Modules: make([]importer.ModuleImport, 0, modules),
	}
	for m := 0; m < modules; m++ {
		mi := importer.ModuleImport{
			Title:    fmt.Sprintf("Module %d", m+1),
			Duration: "1 week",
		}
		for t := 0; t < topicsPerModule; t++ {
			mi.Topics = append(mi.Topics, importer.TopicImport{
				Title:     fmt.Sprintf("Topic %d.%d", m+1, t+1),
				Resources: []string{fmt.Sprintf("https://example.com/%d/%d", m+1, t+1)},
			})
		}
		p.Modules = append(p.Modules, mi)
	}
	return p
}
