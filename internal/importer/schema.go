package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CareerPathImport is one candidate career path as produced by an exploration
// provider. Only role, goal and the module list feed the roadmap; the other
// fields are carried for display.
type CareerPathImport struct {
	Role              string         `json:"role" yaml:"role" validate:"required"`
	Goal              string         `json:"goal,omitempty" yaml:"goal,omitempty" validate:"required"`
	Overview          string         `json:"overview,omitempty" yaml:"overview,omitempty"`
	FitReason         string         `json:"fit_reason,omitempty" yaml:"fit_reason,omitempty"`
	KeySkills         []string       `json:"key_skills_to_learn,omitempty" yaml:"key_skills_to_learn,omitempty"`
	EstimatedTimeline string         `json:"estimated_timeline,omitempty" yaml:"estimated_timeline,omitempty"`
	Modules           []ModuleImport `json:"modules" yaml:"modules" validate:"required_without=Roadmap"`
	// Roadmap is the module list under the key used by the original explore
	// endpoint. It is read only when Modules is absent.
	Roadmap []ModuleImport `json:"roadmap,omitempty" yaml:"roadmap,omitempty"`
}

// ModuleImport is a module description. Title may arrive as "module_title".
// Completed is accepted but ignored; module completion is derived from its
// topics.
type ModuleImport struct {
	Title       string        `json:"title,omitempty" yaml:"title,omitempty"`
	ModuleTitle string        `json:"module_title,omitempty" yaml:"module_title,omitempty"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Duration    string        `json:"duration,omitempty" yaml:"duration,omitempty"`
	Completed   *bool         `json:"completed,omitempty" yaml:"completed,omitempty"`
	Topics      []TopicImport `json:"topics,omitempty" yaml:"topics,omitempty"`
}

// TopicImport is a topic description. Completed is accepted but ignored: a
// freshly chosen path always starts from zero.
type TopicImport struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Completed   bool     `json:"completed,omitempty" yaml:"completed,omitempty"`
	Resources   []string `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// CandidateSet is the envelope returned by the exploration endpoint.
type CandidateSet struct {
	CareerPaths []CareerPathImport `json:"career_paths" yaml:"career_paths"`
}

// ModuleList returns Modules, falling back to Roadmap when Modules is absent.
func (p *CareerPathImport) ModuleList() []ModuleImport {
	if p.Modules != nil {
		return p.Modules
	}
	return p.Roadmap
}

// WithGoal returns a copy of p whose goal is filled from goal when p has none.
// The exploration flow carries the learner's goal separately from the paths.
func (p CareerPathImport) WithGoal(goal string) CareerPathImport {
	if strings.TrimSpace(p.Goal) == "" {
		p.Goal = goal
	}
	return p
}

// Format is the encoding of a career path file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatText is a provider reply saved verbatim: prose or markdown
	// around a JSON payload.
	FormatText Format = "text"
)

// FormatFromPath picks the format from a file extension; unknown extensions
// are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".md", ".txt":
		return FormatText
	}
	return FormatJSON
}

// ParseCareerPath decodes a single career path.
func ParseCareerPath(data []byte, format Format) (*CareerPathImport, error) {
	var p CareerPathImport
	if err := unmarshal(data, format, &p); err != nil {
		return nil, fmt.Errorf("parsing career path: %w", err)
	}
	return &p, nil
}

// LoadCareerPath reads and parses a career path file.
func LoadCareerPath(path string) (*CareerPathImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCareerPath(data, FormatFromPath(path))
}

// ParseCandidates decodes a candidate list, either wrapped in
// {"career_paths": [...]} or given as a bare list.
func ParseCandidates(data []byte, format Format) ([]CareerPathImport, error) {
	if isList(data, format) {
		var paths []CareerPathImport
		if err := unmarshal(data, format, &paths); err != nil {
			return nil, fmt.Errorf("parsing career paths: %w", err)
		}
		return paths, nil
	}
	var set CandidateSet
	if err := unmarshal(data, format, &set); err != nil {
		return nil, fmt.Errorf("parsing career paths: %w", err)
	}
	return set.CareerPaths, nil
}

// LoadCandidates reads and parses a candidate list file.
func LoadCandidates(path string) ([]CareerPathImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCandidates(data, FormatFromPath(path))
}

func unmarshal(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatText:
		payload, err := extractJSON(string(data))
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(payload), v)
	}
	return json.Unmarshal(data, v)
}

func isList(data []byte, format Format) bool {
	if format == FormatYAML {
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil || len(node.Content) == 0 {
			return false
		}
		return node.Content[0].Kind == yaml.SequenceNode
	}
	if format == FormatText {
		payload, err := extractJSON(string(data))
		return err == nil && payload[0] == '['
	}
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}
