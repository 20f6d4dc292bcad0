// Package codec encodes roadmaps for storage and export. The encoding is a
// versioned JSON envelope; decoding validates it against an embedded schema.
package codec

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const (
	// FormatName tags every encoded roadmap.
	FormatName = "pathsense.roadmap"
	// Version is the encoding version written by Encode.
	Version = 1

	schemaURL = "schema://pathsense/roadmap.json"
)

// ErrUnsupportedVersion is returned when decoding a version this build does
// not understand.
var ErrUnsupportedVersion = errors.New("unsupported roadmap encoding version")

//go:embed roadmap.schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

type envelope struct {
	Format  string        `json:"format"`
	Version int           `json:"version"`
	Roadmap roadmapRecord `json:"roadmap"`
}

type roadmapRecord struct {
	ChosenRole string         `json:"chosen_role"`
	Goal       string         `json:"goal"`
	Modules    []moduleRecord `json:"modules"`
}

type moduleRecord struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Duration    string        `json:"duration"`
	Topics      []topicRecord `json:"topics"`
}

type topicRecord struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Resources   []string `json:"resources"`
}

// Encode serializes r, preserving module and topic order, text fields,
// resources and completion flags. Text that is not valid UTF-8 is rejected
// with a MalformedInputError, since JSON would silently replace it.
func Encode(r *domain.Roadmap) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("encoding roadmap: %w", domain.ErrNoActiveRoadmap)
	}
	if problems := invalidText(r); len(problems) > 0 {
		return nil, fmt.Errorf("encoding roadmap: %w", &domain.MalformedInputError{Problems: problems})
	}
	env := envelope{
		Format:  FormatName,
		Version: Version,
		Roadmap: roadmapRecord{
			ChosenRole: r.ChosenRole,
			Goal:       r.Goal,
			Modules:    make([]moduleRecord, 0, len(r.Modules)),
		},
	}
	for _, m := range r.Modules {
		mr := moduleRecord{
			Title:       m.Title,
			Description: m.Description,
			Duration:    m.Duration,
			Topics:      make([]topicRecord, 0, len(m.Topics)),
		}
		for _, t := range m.Topics {
			resources := t.Resources
			if resources == nil {
				resources = []string{}
			}
			mr.Topics = append(mr.Topics, topicRecord{
				Title:       t.Title,
				Description: t.Description,
				Completed:   t.Completed,
				Resources:   resources,
			})
		}
		env.Roadmap.Modules = append(env.Roadmap.Modules, mr)
	}

	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encoding roadmap: %w", err)
	}
	return data, nil
}

// Decode parses data produced by Encode.
func Decode(data []byte) (*domain.Roadmap, error) {
	if err := validateEnvelope(data); err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding roadmap: %w", err)
	}
	if env.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}

	r := &domain.Roadmap{
		ChosenRole: env.Roadmap.ChosenRole,
		Goal:       env.Roadmap.Goal,
		Modules:    make([]domain.Module, 0, len(env.Roadmap.Modules)),
	}
	for _, mr := range env.Roadmap.Modules {
		m := domain.Module{
			Title:       mr.Title,
			Description: mr.Description,
			Duration:    mr.Duration,
			Topics:      make([]domain.Topic, 0, len(mr.Topics)),
		}
		for _, tr := range mr.Topics {
			resources := tr.Resources
			if resources == nil {
				resources = []string{}
			}
			m.Topics = append(m.Topics, domain.Topic{
				Title:       tr.Title,
				Description: tr.Description,
				Completed:   tr.Completed,
				Resources:   resources,
			})
		}
		r.Modules = append(r.Modules, m)
	}
	return r, nil
}

// invalidText names every text field of r that is not valid UTF-8.
func invalidText(r *domain.Roadmap) []string {
	var problems []string
	check := func(field, v string) {
		if !utf8.ValidString(v) {
			problems = append(problems, field+" is not valid UTF-8")
		}
	}
	check("chosen_role", r.ChosenRole)
	check("goal", r.Goal)
	for i, m := range r.Modules {
		mp := fmt.Sprintf("modules[%d]", i)
		check(mp+".title", m.Title)
		check(mp+".description", m.Description)
		check(mp+".duration", m.Duration)
		for j, t := range m.Topics {
			tp := fmt.Sprintf("%s.topics[%d]", mp, j)
			check(tp+".title", t.Title)
			check(tp+".description", t.Description)
			for k, res := range t.Resources {
				check(fmt.Sprintf("%s.resources[%d]", tp, k), res)
			}
		}
	}
	return problems
}

func validateEnvelope(data []byte) error {
	sch, err := roadmapSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding roadmap: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("decoding roadmap: schema validation failed: %w", err)
	}
	return nil
}

func roadmapSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parsing roadmap schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("adding roadmap schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
