package domain

import (
	"fmt"
	"time"
)

// DaySchedule is one user's concrete schedule for a single calendar date.
// At most one DaySchedule exists per (UserID, Date); regenerating a date
// replaces the schedule and all of its items.
type DaySchedule struct {
	ID        string
	UserID    string
	Date      time.Time // calendar date, time components zero
	WakeTime  ClockTime
	SleepTime ClockTime
	Items     []ScheduleItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleItem is a date-resolved occurrence of a template block.
// Items are created together with their schedule and afterwards only
// mutated through completion updates.
type ScheduleItem struct {
	ID         string
	ScheduleID string
	Name       string
	StartTime  time.Time
	EndTime    time.Time
	Type       ItemType
	ProjectID  *string
	TaskID     *string
	Completed  bool
	XPGained   int
}

// Validate checks the item's construction invariants.
func (i *ScheduleItem) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("schedule item name must not be empty")
	}
	if !i.EndTime.After(i.StartTime) {
		return fmt.Errorf("schedule item %q: end %s is not after start %s",
			i.Name, i.EndTime.Format("15:04"), i.StartTime.Format("15:04"))
	}
	if i.XPGained < 0 {
		return fmt.Errorf("schedule item %q: xp gained must not be negative", i.Name)
	}
	if !i.Completed && i.XPGained != 0 {
		return fmt.Errorf("schedule item %q: xp gained set on an uncompleted item", i.Name)
	}
	return nil
}

// Window formats the item's start-end window as "HH:MM-HH:MM".
func (i *ScheduleItem) Window() string {
	return fmt.Sprintf("%s-%s", i.StartTime.Format("15:04"), i.EndTime.Format("15:04"))
}

// Duration returns the item's elapsed duration.
func (i *ScheduleItem) Duration() time.Duration {
	return i.EndTime.Sub(i.StartTime)
}

// Validate checks the schedule's construction invariants: valid wake and
// sleep times, every item valid and inside the schedule's date, items
// ordered by ascending start, and no two items overlapping.
func (s *DaySchedule) Validate() error {
	if s.UserID == "" {
		return fmt.Errorf("schedule user id must not be empty")
	}
	if !s.WakeTime.Valid() {
		return fmt.Errorf("wake time %d out of range", s.WakeTime)
	}
	if !s.SleepTime.Valid() {
		return fmt.Errorf("sleep time %d out of range", s.SleepTime)
	}
	for idx := range s.Items {
		it := &s.Items[idx]
		if err := it.Validate(); err != nil {
			return err
		}
		y, m, d := it.StartTime.Date()
		sy, sm, sd := s.Date.Date()
		if y != sy || m != sm || d != sd {
			return fmt.Errorf("schedule item %q: start %s is outside schedule date %s",
				it.Name, it.StartTime.Format("2006-01-02"), s.Date.Format("2006-01-02"))
		}
		if idx > 0 {
			prev := &s.Items[idx-1]
			if it.StartTime.Before(prev.StartTime) {
				return fmt.Errorf("schedule items out of order: %q starts before %q", it.Name, prev.Name)
			}
			if it.StartTime.Before(prev.EndTime) {
				return fmt.Errorf("schedule items %q and %q overlap", prev.Name, it.Name)
			}
		}
	}
	return nil
}

// DateKey returns the schedule's date formatted as YYYY-MM-DD.
func (s *DaySchedule) DateKey() string {
	return s.Date.Format("2006-01-02")
}
