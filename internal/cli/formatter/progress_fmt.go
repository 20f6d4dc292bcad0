package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathsense/internal/progress"
)

const barWidth = 20

var progressColumns = []Column{
	{Title: "#", Right: true},
	{Title: "MODULE"},
	{Title: "DONE", Right: true},
	{Title: "PROGRESS"},
}

// FormatProgress renders the achievement screen: overall progress, a row per
// module and the topics completed so far.
func FormatProgress(role string, snap progress.Snapshot) string {
	var b strings.Builder

	b.WriteString(Header("Progress · " + role))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Overall  %s  %s · %s complete\n\n",
		RenderProgress(snap.OverallPercent(), barWidth),
		fmt.Sprintf("%d/%d topics", snap.CompletedTopics(), snap.TotalTopics()),
		Plural(snap.CompletedModules(), "module"),
	))

	if len(snap.PerModule) > 0 {
		rows := make([][]string, 0, len(snap.PerModule))
		for i, mp := range snap.PerModule {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i),
				mp.Title,
				fmt.Sprintf("%d/%d", mp.CompletedCount, mp.TotalCount),
				RenderProgress(mp.Percent, barWidth/2),
			})
		}
		b.WriteString(RenderTable(progressColumns, rows))
		b.WriteString("\n")
	}

	b.WriteString(Bold("Completed topics"))
	b.WriteString("\n")
	if len(snap.OverallCompletedTopics) == 0 {
		b.WriteString(Dim("  Nothing completed yet."))
		b.WriteString("\n")
		return b.String()
	}
	for _, t := range snap.OverallCompletedTopics {
		b.WriteString("  " + CompletionMark(true) + " " + t.Title + "\n")
	}
	return b.String()
}
