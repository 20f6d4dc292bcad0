package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/alexanderramin/pathsense/internal/progress"
)

// FormatRoadmap renders the learning screen: every module with its topics,
// each labelled with the indexes the toggle commands take.
func FormatRoadmap(r *domain.Roadmap, phase domain.SessionPhase) string {
	var b strings.Builder

	b.WriteString(Header(r.ChosenRole))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s   %s\n\n", Dim("Goal:"), r.Goal, PhaseBadge(phase)))

	if len(r.Modules) == 0 {
		b.WriteString(Dim("This roadmap has no modules."))
		b.WriteString("\n")
		return b.String()
	}

	snap := progress.Compute(r)
	roots := make([]TreeNode, 0, len(r.Modules))
	for mi, m := range r.Modules {
		mp := snap.PerModule[mi]
		node := TreeNode{
			Label:    fmt.Sprintf("%d", mi),
			Title:    Bold(m.Title),
			Status:   moduleStatus(mp),
			Detail:   moduleDetail(m, mp),
			Children: make([]TreeNode, 0, len(m.Topics)),
		}
		for ti, t := range m.Topics {
			status := StatusOpen
			if t.Completed {
				status = StatusCompleted
			}
			node.Children = append(node.Children, TreeNode{
				Label:  fmt.Sprintf("%d.%d", mi, ti),
				Title:  t.Title,
				Status: status,
			})
		}
		roots = append(roots, node)
	}
	b.WriteString(RenderTree(roots))
	return b.String()
}

// FormatTopic renders one topic with its description and resources.
func FormatTopic(t domain.Topic) string {
	var b strings.Builder
	b.WriteString(CompletionMark(t.Completed) + " " + Bold(t.Title) + "\n")
	if t.Description != "" {
		b.WriteString("  " + t.Description + "\n")
	}
	for _, res := range t.Resources {
		b.WriteString("  " + StyleBlue.Render("↗ "+res) + "\n")
	}
	return b.String()
}

func moduleStatus(mp progress.ModuleProgress) string {
	switch {
	case mp.TotalCount > 0 && mp.CompletedCount == mp.TotalCount:
		return StatusCompleted
	case mp.CompletedCount > 0:
		return StatusInProgress
	default:
		return ""
	}
}

func moduleDetail(m domain.Module, mp progress.ModuleProgress) string {
	detail := fmt.Sprintf("%d/%d · %d%%", mp.CompletedCount, mp.TotalCount, Round(mp.Percent))
	if m.Duration != "" {
		detail = m.Duration + " · " + detail
	}
	return detail
}
