package store

import (
	"testing"

	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func statsRoadmap() *domain.Roadmap {
	return &domain.Roadmap{
		ChosenRole: "Data Scientist",
		Goal:       "switch careers",
		Modules: []domain.Module{
			{
				Title:       "Stats",
				Description: "Foundations",
				Duration:    "2 weeks",
				Topics: []domain.Topic{
					{Title: "Probability", Resources: []string{"https://example.com/prob"}},
					{Title: "Bayes", Resources: []string{}},
				},
			},
			{Title: "Empty", Topics: []domain.Topic{}},
		},
	}
}

func boundStore(t *testing.T) *RoadmapStore {
	t.Helper()
	s := New()
	s.Bind(statsRoadmap())
	require.True(t, s.HasActiveRoadmap())
	return s
}

func current(t *testing.T, s *RoadmapStore) *domain.Roadmap {
	t.Helper()
	r, ok := s.Current()
	require.True(t, ok)
	return r
}

func TestStore_EmptyStore(t *testing.T) {
	s := New()

	r, ok := s.Current()
	assert.False(t, ok)
	assert.Nil(t, r)
	assert.False(t, s.HasActiveRoadmap())

	err := s.ToggleTopic(0, 0)
	assert.ErrorIs(t, err, domain.ErrNoActiveRoadmap)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	_, err = s.Progress()
	assert.ErrorIs(t, err, domain.ErrNoActiveRoadmap)
}

func TestStore_ScenarioToggleThenProgress(t *testing.T) {
	s := boundStore(t)

	require.NoError(t, s.ToggleTopic(0, 1))

	snap, err := s.Progress()
	require.NoError(t, err)
	assert.Equal(t, 1, snap.PerModule[0].CompletedCount)
	assert.Equal(t, 2, snap.PerModule[0].TotalCount)
	assert.Equal(t, 50.0, snap.PerModule[0].Percent)
	require.Len(t, snap.OverallCompletedTopics, 1)
	assert.Equal(t, "Bayes", snap.OverallCompletedTopics[0].Title)
}

func TestStore_ToggleInvolution(t *testing.T) {
	s := boundStore(t)
	before := current(t, s)

	for m, mod := range before.Modules {
		for ti := range mod.Topics {
			require.NoError(t, s.ToggleTopic(m, ti))
			mid := current(t, s)
			assert.NotEqual(t, before.Modules[m].Topics[ti].Completed, mid.Modules[m].Topics[ti].Completed)

			require.NoError(t, s.ToggleTopic(m, ti))
			after := current(t, s)
			if diff := cmp.Diff(before, after); diff != "" {
				t.Fatalf("double toggle of (%d,%d) changed roadmap (-before +after):\n%s", m, ti, diff)
			}
		}
	}
}

func TestStore_ToggleChangesExactlyOneTopic(t *testing.T) {
	s := boundStore(t)
	before := current(t, s)

	require.NoError(t, s.ToggleTopic(0, 0))
	after := current(t, s)

	before.Modules[0].Topics[0].Completed = true
	assert.True(t, before.Equal(after))
}

func TestStore_OutOfRangeRejected(t *testing.T) {
	tests := []struct {
		name   string
		module int
		topic  int
	}{
		{"negative module", -1, 0},
		{"module past end", 2, 0},
		{"negative topic", 0, -1},
		{"topic at length", 0, 2},
		{"topic in empty module", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := boundStore(t)
			before := current(t, s)
			rev := s.Revision()

			err := s.ToggleTopic(tt.module, tt.topic)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
			assert.NotErrorIs(t, err, domain.ErrNoActiveRoadmap)

			var ioe *domain.IndexOutOfRangeError
			require.ErrorAs(t, err, &ioe)
			assert.Equal(t, tt.module, ioe.Module)

			assert.True(t, before.Equal(current(t, s)), "roadmap must be unchanged")
			assert.Equal(t, rev, s.Revision())
		})
	}
}

func TestStore_Topic(t *testing.T) {
	s := boundStore(t)

	got, err := s.Topic(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Probability", got.Title)
	assert.Equal(t, []string{"https://example.com/prob"}, got.Resources)

	got.Resources[0] = "changed"
	got.Completed = true
	again, err := s.Topic(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/prob", again.Resources[0])
	assert.False(t, again.Completed)
}

func TestStore_TopicUsesToggleIndexRules(t *testing.T) {
	s := boundStore(t)
	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 2}, {1, 0}} {
		_, readErr := s.Topic(idx[0], idx[1])
		toggleErr := s.ToggleTopic(idx[0], idx[1])

		assert.ErrorIs(t, readErr, domain.ErrIndexOutOfRange, "index %v", idx)
		var readIOE, toggleIOE *domain.IndexOutOfRangeError
		require.ErrorAs(t, readErr, &readIOE)
		require.ErrorAs(t, toggleErr, &toggleIOE)
		assert.Equal(t, *toggleIOE, *readIOE, "index %v", idx)
	}

	_, err := New().Topic(0, 0)
	assert.ErrorIs(t, err, domain.ErrNoActiveRoadmap)
}

func TestStore_BindCopiesInput(t *testing.T) {
	r := statsRoadmap()
	s := New()
	s.Bind(r)

	r.Modules[0].Topics[0].Completed = true
	r.Modules[0].Title = "mutated"

	got := current(t, s)
	assert.False(t, got.Modules[0].Topics[0].Completed)
	assert.Equal(t, "Stats", got.Modules[0].Title)
}

func TestStore_CurrentIsSnapshot(t *testing.T) {
	s := boundStore(t)
	snapshot := current(t, s)
	snapshot.Modules[0].Topics[0].Completed = true
	snapshot.Modules[0].Topics[0].Resources[0] = "mutated"

	got := current(t, s)
	assert.False(t, got.Modules[0].Topics[0].Completed)
	assert.Equal(t, "https://example.com/prob", got.Modules[0].Topics[0].Resources[0])
}

func TestStore_RebindDiscardsProgress(t *testing.T) {
	s := boundStore(t)
	require.NoError(t, s.ToggleTopic(0, 0))

	s.Bind(statsRoadmap())

	snap, err := s.Progress()
	require.NoError(t, err)
	assert.Empty(t, snap.OverallCompletedTopics)
}

func TestStore_BindNilUnbinds(t *testing.T) {
	s := boundStore(t)
	s.Bind(nil)
	assert.False(t, s.HasActiveRoadmap())
	assert.ErrorIs(t, s.ToggleTopic(0, 0), domain.ErrNoActiveRoadmap)
}

func TestStore_SnapshotStaleness(t *testing.T) {
	s := boundStore(t)

	snap, err := s.Progress()
	require.NoError(t, err)
	assert.False(t, s.IsStale(snap))

	require.NoError(t, s.ToggleTopic(0, 0))
	assert.True(t, s.IsStale(snap), "toggle should stale earlier snapshots")

	snap, err = s.Progress()
	require.NoError(t, err)
	s.Bind(statsRoadmap())
	assert.True(t, s.IsStale(snap), "bind should stale earlier snapshots")
}

func TestStore_SetTopicCompleted(t *testing.T) {
	s := boundStore(t)
	rev := s.Revision()

	require.NoError(t, s.SetTopicCompleted(0, 0, false))
	assert.Equal(t, rev, s.Revision(), "no-op set should not bump revision")

	require.NoError(t, s.SetTopicCompleted(0, 0, true))
	require.NoError(t, s.SetTopicCompleted(0, 0, true))
	assert.True(t, current(t, s).Modules[0].Topics[0].Completed)
	assert.Equal(t, rev+1, s.Revision())

	assert.ErrorIs(t, s.SetTopicCompleted(0, 9, true), domain.ErrIndexOutOfRange)
}

func TestStore_ConcurrentTogglesAreNotLost(t *testing.T) {
	const topicsPerModule = 50
	r := &domain.Roadmap{Modules: make([]domain.Module, 4)}
	for i := range r.Modules {
		r.Modules[i].Topics = make([]domain.Topic, topicsPerModule)
	}
	s := New()
	s.Bind(r)

	var g errgroup.Group
	for m := range r.Modules {
		for ti := 0; ti < topicsPerModule; ti++ {
			m, ti := m, ti
			g.Go(func() error { return s.ToggleTopic(m, ti) })
			g.Go(func() error {
				_, err := s.Progress()
				return err
			})
		}
	}
	require.NoError(t, g.Wait())

	snap, err := s.Progress()
	require.NoError(t, err)
	assert.Equal(t, 4*topicsPerModule, snap.CompletedTopics())
	for _, mp := range snap.PerModule {
		assert.Equal(t, 100.0, mp.Percent)
	}
}
