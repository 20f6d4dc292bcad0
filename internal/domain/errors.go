package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedInput indicates an external career path is missing required
	// fields and cannot be built into a roadmap.
	ErrMalformedInput = errors.New("malformed career path input")

	// ErrIndexOutOfRange indicates a toggle addressed a module or topic that
	// does not exist in the bound roadmap.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoActiveRoadmap indicates an operation needed a bound roadmap but
	// none is bound.
	ErrNoActiveRoadmap = errors.New("no active roadmap")
)

// MalformedInputError lists every problem found in a career path.
type MalformedInputError struct {
	Problems []string
}

func (e *MalformedInputError) Error() string {
	if len(e.Problems) == 0 {
		return ErrMalformedInput.Error()
	}
	return fmt.Sprintf("%s: %s", ErrMalformedInput, strings.Join(e.Problems, "; "))
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// IndexOutOfRangeError describes a rejected module/topic address.
// TopicCount is -1 when the module index itself was invalid.
type IndexOutOfRangeError struct {
	Module      int
	Topic       int
	ModuleCount int
	TopicCount  int
}

func (e *IndexOutOfRangeError) Error() string {
	if e.TopicCount < 0 {
		return fmt.Sprintf("%s: module %d not in [0, %d)", ErrIndexOutOfRange, e.Module, e.ModuleCount)
	}
	return fmt.Sprintf("%s: topic %d not in [0, %d) for module %d", ErrIndexOutOfRange, e.Topic, e.TopicCount, e.Module)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// NoActiveRoadmapError is returned when Op ran with nothing bound. It also
// matches ErrIndexOutOfRange: with no roadmap there is no valid index.
type NoActiveRoadmapError struct {
	Op string
}

func (e *NoActiveRoadmapError) Error() string {
	if e.Op == "" {
		return ErrNoActiveRoadmap.Error()
	}
	return fmt.Sprintf("%s: %s", e.Op, ErrNoActiveRoadmap)
}

func (e *NoActiveRoadmapError) Is(target error) bool {
	return target == ErrNoActiveRoadmap || target == ErrIndexOutOfRange
}
