package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathsense/internal/importer"
)

// FormatCandidates renders the career paths an exploration returned, one box
// per path.
func FormatCandidates(paths []importer.CareerPathImport) string {
	if len(paths) == 0 {
		return Dim("No career paths found.") + "\n"
	}

	var b strings.Builder
	for i, p := range paths {
		var body strings.Builder
		if p.Overview != "" {
			body.WriteString(p.Overview + "\n")
		}
		if p.FitReason != "" {
			body.WriteString(Dim("Why it fits: ") + p.FitReason + "\n")
		}
		if len(p.KeySkills) > 0 {
			body.WriteString(Dim("Key skills: ") + StylePurple.Render(strings.Join(p.KeySkills, ", ")) + "\n")
		}

		modules := p.ModuleList()
		topics := 0
		for _, m := range modules {
			topics += len(m.Topics)
		}
		summary := Plural(len(modules), "module") + " · " + Plural(topics, "topic")
		if p.EstimatedTimeline != "" {
			summary += " · " + p.EstimatedTimeline
		}
		body.WriteString(Dim(summary))

		b.WriteString(RenderBox(fmt.Sprintf("%d. %s", i+1, p.Role), body.String()))
		b.WriteString("\n")
	}
	return b.String()
}
