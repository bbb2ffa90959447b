package formatter

import (
	"fmt"
	"strings"

	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/xp"
)

// RenderProfile renders the player profile with progress toward the
// next level and the per-skill table.
func RenderProfile(p *domain.PlayerProfile) string {
	var b strings.Builder

	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Bold(fmt.Sprintf("Level %d", p.Level)), Dim(fmt.Sprintf("· %d XP total", p.TotalXP)))

	cur := xp.RequiredForLevel(p.Level)
	next := xp.RequiredForLevel(p.Level + 1)
	pct := 0.0
	if next > cur {
		pct = float64(p.TotalXP-cur) / float64(next-cur)
	}
	b.WriteString(RenderProgress(pct, 20))
	fmt.Fprintf(&b, " %s\n", Dim(fmt.Sprintf("%d / %d XP to level %d", p.TotalXP, next, p.Level+1)))

	if len(p.Skills) > 0 {
		b.WriteString("\n")
		headers := []string{"SKILL", "LEVEL", "XP"}
		rows := make([][]string, 0, len(p.Skills))
		for _, s := range p.Skills {
			rows = append(rows, []string{
				StylePurple.Render(s.Name),
				fmt.Sprintf("%d", s.Level),
				fmt.Sprintf("%d", s.XP),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}
	return b.String()
}

// RenderXPLog renders recent XP ledger entries.
func RenderXPLog(entries []*domain.XPEntry) string {
	if len(entries) == 0 {
		return Dim("No XP recorded yet.")
	}
	headers := []string{"DATE", "AMOUNT", "SOURCE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Date.Format("2006-01-02"),
			FormatXP(e.Amount),
			e.Source,
		})
	}
	return RenderTable(headers, rows)
}
