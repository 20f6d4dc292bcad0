package explore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pathsense/internal/importer"
)

// ErrPathNotFound is returned when no candidate matches the requested role.
var ErrPathNotFound = errors.New("career path not found")

// Provider produces candidate career paths for a profile. Implementations may
// call out to a recommendation backend; a failed call must return an error
// and no paths.
type Provider interface {
	Explore(ctx context.Context, profile Profile) ([]importer.CareerPathImport, error)
}

// FileProvider serves candidates from a JSON or YAML file, either a
// {"career_paths": [...]} envelope or a bare list.
type FileProvider struct {
	Path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

func (p *FileProvider) Explore(ctx context.Context, profile Profile) ([]importer.CareerPathImport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	paths, err := importer.LoadCandidates(p.Path)
	if err != nil {
		return nil, fmt.Errorf("loading candidates: %w", err)
	}
	return fillGoals(paths, profile.Goal), nil
}

// StaticProvider returns a fixed candidate list.
type StaticProvider []importer.CareerPathImport

func (s StaticProvider) Explore(ctx context.Context, profile Profile) ([]importer.CareerPathImport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return fillGoals(s, profile.Goal), nil
}

func fillGoals(paths []importer.CareerPathImport, goal string) []importer.CareerPathImport {
	out := make([]importer.CareerPathImport, 0, len(paths))
	for _, p := range paths {
		out = append(out, p.WithGoal(strings.TrimSpace(goal)))
	}
	return out
}

// FindPath returns the candidate whose role matches role, ignoring case and
// surrounding space.
func FindPath(paths []importer.CareerPathImport, role string) (*importer.CareerPathImport, error) {
	want := strings.TrimSpace(role)
	for i := range paths {
		if strings.EqualFold(strings.TrimSpace(paths[i].Role), want) {
			p := paths[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("role %q: %w", role, ErrPathNotFound)
}
