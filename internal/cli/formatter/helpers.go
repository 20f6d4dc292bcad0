package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(1, 2)

// RenderBox frames content, with title upper-cased above it when set.
func RenderBox(title, content string) string {
	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// HumanTimestampFrom describes t relative to now: "Just now", "5m ago",
// "3h ago", then "Today", "Yesterday" or a date.
func HumanTimestampFrom(t, now time.Time) string {
	switch d := now.Sub(t); {
	case d >= 0 && d < time.Minute:
		return "Just now"
	case d >= 0 && d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d >= 0 && d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case sameDay(t, now):
		return "Today"
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return t.Format("Jan 2, 2006")
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ActivePill marks whether a career path is the learner's current one.
func ActivePill(active bool) string {
	if active {
		return StyleGreen.Render("● Active")
	}
	return StyleDim.Render("✖ Replaced")
}

// TruncID keeps the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	return StyleDim.Render(id[:min(len(id), 8)])
}

func Plural(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}
	return fmt.Sprintf("%d %s", n, noun)
}
