package schedule

import (
	"sort"
	"time"

	"github.com/m4tyn0/HAL9001/internal/domain"
)

// Build resolves every template block against the given date and
// wake/sleep anchors and assembles a full DaySchedule. Items are ordered
// by ascending start time; template order breaks ties. Any pair of
// overlapping windows fails the whole build with a ConflictError.
// Nothing is persisted: the returned schedule is a plain value.
func Build(blocks []Block, date time.Time, wake, sleep domain.ClockTime) (*domain.DaySchedule, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nextDay := day.AddDate(0, 0, 1)

	type resolved struct {
		item domain.ScheduleItem
		pos  int // template position, tie-break for equal starts
	}

	items := make([]resolved, 0, len(blocks))
	for i, b := range blocks {
		start, end, err := Resolve(b, day, wake, sleep)
		if err != nil {
			return nil, err
		}
		if start.Before(day) || end.After(nextDay) {
			return nil, &InvalidSpecError{
				Block: b.Name, Field: "start", Value: b.Start,
				Reason: "resolved window leaves the calendar day",
			}
		}
		items = append(items, resolved{
			item: domain.ScheduleItem{
				Name:      b.Name,
				StartTime: start,
				EndTime:   end,
				Type:      b.Type,
				ProjectID: b.ProjectID,
				TaskID:    b.TaskID,
			},
			pos: i,
		})
	}

	// Template order is not assumed chronological: sleep-relative anchors
	// can appear anywhere in the list.
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.item.StartTime.Equal(b.item.StartTime) {
			return a.item.StartTime.Before(b.item.StartTime)
		}
		return a.pos < b.pos
	})

	out := make([]domain.ScheduleItem, len(items))
	for i, r := range items {
		if i > 0 {
			prev := &out[i-1]
			if r.item.StartTime.Before(prev.EndTime) {
				return nil, &ConflictError{
					BlockA:  prev.Name,
					WindowA: prev.Window(),
					BlockB:  r.item.Name,
					WindowB: r.item.Window(),
				}
			}
		}
		out[i] = r.item
	}

	return &domain.DaySchedule{
		Date:      day,
		WakeTime:  wake,
		SleepTime: sleep,
		Items:     out,
	}, nil
}
