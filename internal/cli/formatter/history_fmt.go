package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathsense/internal/domain"
	"github.com/alexanderramin/pathsense/internal/progress"
)

var historyColumns = []Column{
	{Title: "ID"},
	{Title: "ROLE"},
	{Title: "GOAL"},
	{Title: "DONE", Right: true},
	{Title: "STATUS"},
	{Title: "CHOSEN"},
}

// FormatHistory lists every career path a learner has chosen, oldest first.
func FormatHistory(records []*domain.CareerPathRecord) string {
	return FormatHistoryAt(records, time.Now())
}

// FormatHistoryAt is FormatHistory with a fixed reference time.
func FormatHistoryAt(records []*domain.CareerPathRecord, now time.Time) string {
	if len(records) == 0 {
		return Dim("No career path chosen yet. Run 'pathsense explore' to find one.") + "\n"
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		snap := progress.Compute(rec.Roadmap)
		rows = append(rows, []string{
			TruncID(rec.ID),
			rec.ChosenRole,
			rec.Goal,
			fmt.Sprintf("%d%%", Round(snap.OverallPercent())),
			ActivePill(rec.Active),
			HumanTimestampFrom(rec.CreatedAt, now),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Career paths"))
	b.WriteString("\n")
	b.WriteString(RenderTable(historyColumns, rows))
	return b.String()
}
