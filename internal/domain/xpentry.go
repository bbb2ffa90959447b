package domain

import "time"

// XPEntry is one row of the append-only XP ledger. Schedule item
// completions record Source as "schedule_item:<name>".
type XPEntry struct {
	ID     string
	Date   time.Time
	Player string
	Skill  string
	Amount int
	Source string
}
