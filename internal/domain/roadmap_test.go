package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoadmap() *Roadmap {
	return &Roadmap{
		ChosenRole: "Data Scientist",
		Goal:       "switch careers",
		Modules: []Module{
			{
				Title:    "Stats",
				Duration: "2 weeks",
				Topics: []Topic{
					{Title: "Probability", Resources: []string{"https://example.com/prob"}},
					{Title: "Bayes", Resources: []string{}},
				},
			},
			{Title: "Empty"},
		},
	}
}

func TestRoadmap_TopicCount(t *testing.T) {
	assert.Equal(t, 2, sampleRoadmap().TopicCount())

	var nilRoadmap *Roadmap
	assert.Equal(t, 0, nilRoadmap.TopicCount())
}

func TestRoadmap_CloneSharesNothing(t *testing.T) {
	orig := sampleRoadmap()
	c := orig.Clone()
	require.True(t, orig.Equal(c))

	c.Modules[0].Topics[0].Completed = true
	c.Modules[0].Topics[0].Resources[0] = "changed"

	assert.False(t, orig.Modules[0].Topics[0].Completed)
	assert.Equal(t, "https://example.com/prob", orig.Modules[0].Topics[0].Resources[0])
	assert.False(t, orig.Equal(c))
}

func TestRoadmap_EqualTreatsNilResourcesAsEmpty(t *testing.T) {
	a := sampleRoadmap()
	b := sampleRoadmap()
	b.Modules[0].Topics[1].Resources = nil
	assert.True(t, a.Equal(b))
}

func TestRoadmap_EqualNil(t *testing.T) {
	var a, b *Roadmap
	assert.True(t, a.Equal(b))
	assert.False(t, sampleRoadmap().Equal(nil))
}

func TestParseSessionPhase(t *testing.T) {
	tests := []struct {
		in   string
		want SessionPhase
	}{
		{"explore", PhaseExploring},
		{"Exploring", PhaseExploring},
		{"learn", PhaseLearning},
		{" achieving ", PhaseAchieving},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSessionPhase(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}

	_, err := ParseSessionPhase("graduating")
	assert.Error(t, err)
	assert.False(t, SessionPhase("graduating").Valid())
}

func TestErrorTaxonomy(t *testing.T) {
	var err error = &IndexOutOfRangeError{Module: 0, Topic: 5, ModuleCount: 1, TopicCount: 2}
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.NotErrorIs(t, err, ErrNoActiveRoadmap)
	assert.Contains(t, err.Error(), "topic 5")

	err = &IndexOutOfRangeError{Module: -1, ModuleCount: 1, TopicCount: -1}
	assert.Contains(t, err.Error(), "module -1")

	err = &NoActiveRoadmapError{Op: "toggle topic"}
	assert.ErrorIs(t, err, ErrNoActiveRoadmap)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	err = &MalformedInputError{Problems: []string{"role is required"}}
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.True(t, errors.Is(err, ErrMalformedInput))
	assert.Contains(t, err.Error(), "role is required")
}
