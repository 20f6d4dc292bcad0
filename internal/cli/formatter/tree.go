package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Node statuses. The zero value renders without a marker.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// TreeNode is one row of a rendered tree. Label is the index shown before
// the title ("0.1"); Detail is shown as a right-aligned badge.
type TreeNode struct {
	Label    string
	Title    string
	Status   string
	Detail   string
	Children []TreeNode
}

type treeLine struct {
	text  string
	badge string
}

// RenderTree draws roots and their children with box-drawing connectors.
// Badges line up in one column after the widest row.
func RenderTree(roots []TreeNode) string {
	var lines []treeLine
	for _, n := range roots {
		lines = appendNode(lines, n, "", "")
	}
	if len(lines) == 0 {
		return ""
	}

	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l.text))
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.text)
		if l.badge != "" {
			b.WriteString(strings.Repeat(" ", width-lipgloss.Width(l.text)+2))
			b.WriteString(StyleBlue.Render("[ " + l.badge + " ]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// appendNode adds n and its subtree. lead is the connector for n itself;
// indent is what its children inherit.
func appendNode(lines []treeLine, n TreeNode, lead, indent string) []treeLine {
	lines = append(lines, treeLine{text: lead + decorate(n), badge: n.Detail})
	for i, c := range n.Children {
		if i == len(n.Children)-1 {
			lines = appendNode(lines, c, indent+"└─ ", indent+"   ")
		} else {
			lines = appendNode(lines, c, indent+"├─ ", indent+"│  ")
		}
	}
	return lines
}

func decorate(n TreeNode) string {
	title := n.Title
	if n.Label != "" {
		title = StyleDim.Render(n.Label+" ") + title
	}
	switch n.Status {
	case StatusCompleted:
		return StyleGreen.Render("✔ ") + Dim(title)
	case StatusInProgress:
		return StyleYellowBold.Render("▶ " + title)
	case StatusOpen:
		return StyleDim.Render("○ ") + title
	}
	return title
}
