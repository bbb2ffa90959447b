package formatter

import (
	"fmt"
	"strings"

	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/schedule"
)

// RenderSchedule renders a full day schedule: date header, anchor
// summary, per-item table and the day's completion bar.
func RenderSchedule(s *domain.DaySchedule) string {
	var b strings.Builder

	b.WriteString(Header(s.Date.Format("Monday, Jan 2 2006")))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("wake %s · sleep %s", s.WakeTime, s.SleepTime)))
	b.WriteString("\n\n")

	if len(s.Items) == 0 {
		b.WriteString(Dim("No scheduled items."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"", "TIME", "ITEM", "TYPE", "DUR", "XP", "ID"}
	rows := make([][]string, 0, len(s.Items))
	for i := range s.Items {
		it := &s.Items[i]
		xpCell := ""
		if it.Completed {
			xpCell = FormatXP(it.XPGained)
		}
		name := it.Name
		if it.Completed {
			name = StyleDim.Render(name)
		}
		rows = append(rows, []string{
			CheckMark(it.Completed),
			it.Window(),
			name,
			ItemTypeBadge(it.Type),
			FormatMinutes(int(it.Duration().Minutes())),
			xpCell,
			TruncID(it.ID),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(RenderProgress(schedule.CompletionRate(s), 20))
	b.WriteString("\n")
	return b.String()
}

// RenderCompletion renders the outcome of completing a schedule item.
func RenderCompletion(name string, xpAwarded, totalXP, level int, leveledUp bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", StyleGreen.Render("✔"), Bold(name), FormatXP(xpAwarded))
	fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("total %d XP · level %d", totalXP, level)))
	if leveledUp {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("★ Level up! You reached level %d", level)))
		b.WriteString("\n")
	}
	return b.String()
}
