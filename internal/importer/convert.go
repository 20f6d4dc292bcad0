package importer

import (
	"strings"

	"github.com/alexanderramin/pathsense/internal/domain"
)

// Build turns an external career path into a fresh roadmap. Every topic
// starts incomplete regardless of the flags in p, and missing resource lists
// become empty lists. An empty module list is valid.
func Build(p *CareerPathImport) (*domain.Roadmap, error) {
	if errs := ValidateCareerPath(p); len(errs) > 0 {
		return nil, malformed(errs)
	}

	src := p.ModuleList()
	roadmap := &domain.Roadmap{
		ChosenRole: strings.TrimSpace(p.Role),
		Goal:       strings.TrimSpace(p.Goal),
		Modules:    make([]domain.Module, 0, len(src)),
	}

	for _, m := range src {
		topics := make([]domain.Topic, 0, len(m.Topics))
		for _, t := range m.Topics {
			resources := make([]string, len(t.Resources))
			copy(resources, t.Resources)
			topics = append(topics, domain.Topic{
				Title:       t.Title,
				Description: t.Description,
				Completed:   false,
				Resources:   resources,
			})
		}
		roadmap.Modules = append(roadmap.Modules, domain.Module{
			Title:       domain.CoalesceStr(m.Title, m.ModuleTitle),
			Description: m.Description,
			Duration:    m.Duration,
			Topics:      topics,
		})
	}

	return roadmap, nil
}
