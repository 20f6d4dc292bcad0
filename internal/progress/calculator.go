// Package progress derives completion statistics from a roadmap. Nothing in
// this package mutates its input or caches results.
package progress

import "github.com/alexanderramin/pathsense/internal/domain"

// ModuleProgress is the completion state of one module.
type ModuleProgress struct {
	Title          string
	CompletedCount int
	TotalCount     int
	// Percent is CompletedCount/TotalCount*100, unrounded. Zero for an empty module.
	Percent float64
}

// Snapshot is a read-only view of a roadmap's progress at one revision.
type Snapshot struct {
	// Revision identifies the store state the snapshot was taken from.
	// Zero for snapshots computed outside a store.
	Revision               uint64
	PerModule              []ModuleProgress
	OverallCompletedTopics []domain.Topic
}

// Compute returns the progress snapshot for r. A nil roadmap yields an empty
// snapshot.
func Compute(r *domain.Roadmap) Snapshot {
	snap := Snapshot{
		PerModule:              []ModuleProgress{},
		OverallCompletedTopics: []domain.Topic{},
	}
	if r == nil {
		return snap
	}

	snap.PerModule = make([]ModuleProgress, 0, len(r.Modules))
	for _, m := range r.Modules {
		mp := ModuleProgress{Title: m.Title, TotalCount: len(m.Topics)}
		for _, t := range m.Topics {
			if !t.Completed {
				continue
			}
			mp.CompletedCount++
			snap.OverallCompletedTopics = append(snap.OverallCompletedTopics, copyTopic(t))
		}
		mp.Percent = Percent(mp.CompletedCount, mp.TotalCount)
		snap.PerModule = append(snap.PerModule, mp)
	}
	return snap
}

// Percent returns completed/total*100, or 0 when total is 0.
func Percent(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// CompletedTopics is the number of completed topics across all modules.
func (s Snapshot) CompletedTopics() int {
	return len(s.OverallCompletedTopics)
}

// TotalTopics is the number of topics across all modules.
func (s Snapshot) TotalTopics() int {
	n := 0
	for _, m := range s.PerModule {
		n += m.TotalCount
	}
	return n
}

// OverallPercent is the share of all topics completed, 0 with no topics.
func (s Snapshot) OverallPercent() float64 {
	return Percent(s.CompletedTopics(), s.TotalTopics())
}

// CompletedModules counts modules with at least one topic, all completed.
func (s Snapshot) CompletedModules() int {
	n := 0
	for _, m := range s.PerModule {
		if m.TotalCount > 0 && m.CompletedCount == m.TotalCount {
			n++
		}
	}
	return n
}

func copyTopic(t domain.Topic) domain.Topic {
	res := make([]string, len(t.Resources))
	copy(res, t.Resources)
	t.Resources = res
	return t
}
