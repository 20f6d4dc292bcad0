package domain

import (
	"fmt"
	"strings"
)

// SessionPhase is the screen the learner is on. It carries no business data;
// it only gates whether a bound roadmap is required.
type SessionPhase string

const (
	PhaseExploring SessionPhase = "exploring"
	PhaseLearning  SessionPhase = "learning"
	PhaseAchieving SessionPhase = "achieving"
)

// Valid reports whether p is one of the known phases.
func (p SessionPhase) Valid() bool {
	switch p {
	case PhaseExploring, PhaseLearning, PhaseAchieving:
		return true
	}
	return false
}

// RequiresRoadmap reports whether entering p needs a bound roadmap.
func (p SessionPhase) RequiresRoadmap() bool {
	return p == PhaseLearning || p == PhaseAchieving
}

// ParseSessionPhase accepts the canonical phase names as well as the short
// screen names "explore", "learn" and "achieve".
func ParseSessionPhase(s string) (SessionPhase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exploring", "explore":
		return PhaseExploring, nil
	case "learning", "learn":
		return PhaseLearning, nil
	case "achieving", "achieve":
		return PhaseAchieving, nil
	}
	return "", fmt.Errorf("unknown session phase %q (expected explore, learn or achieve)", s)
}
