package schedule

import (
	"regexp"
	"strconv"
	"time"

	"github.com/m4tyn0/HAL9001/internal/domain"
)

// Block is one template entry describing a recurring daily activity slot.
// Start is an absolute "HH:MM", a wake-relative "+HH:MM", or a
// sleep-relative "-HH:MM". Duration is an "HH:MM" elapsed duration.
type Block struct {
	Name     string
	Start    string
	Duration string
	Type     domain.ItemType

	// Optional links carried onto the generated item.
	ProjectID *string
	TaskID    *string
}

var specPattern = regexp.MustCompile(`^([+-]?)([0-9]{2}):([0-9]{2})$`)

// parseSpec splits an optionally signed HH:MM string into its sign
// ("", "+" or "-") and total minutes.
func parseSpec(s string) (sign string, minutes int, ok bool) {
	m := specPattern.FindStringSubmatch(s)
	if m == nil {
		return "", 0, false
	}
	h, _ := strconv.Atoi(m[2])
	min, _ := strconv.Atoi(m[3])
	if min > 59 {
		return "", 0, false
	}
	return m[1], h*60 + min, true
}

// Resolve computes the absolute start and end instants for one block on
// the given date. Wake-relative starts offset forward from the wake
// time, sleep-relative starts offset backward from the sleep time, and
// unsigned starts are absolute clock times on the date. Pure: same
// inputs always yield the same instants.
func Resolve(b Block, date time.Time, wake, sleep domain.ClockTime) (time.Time, time.Time, error) {
	sign, startMin, ok := parseSpec(b.Start)
	if !ok {
		return time.Time{}, time.Time{}, &InvalidSpecError{
			Block: b.Name, Field: "start", Value: b.Start,
			Reason: "expected HH:MM, +HH:MM or -HH:MM",
		}
	}
	if sign == "" && startMin >= domain.MinutesPerDay {
		return time.Time{}, time.Time{}, &InvalidSpecError{
			Block: b.Name, Field: "start", Value: b.Start,
			Reason: "absolute start must be before 24:00",
		}
	}

	durSign, durMin, ok := parseSpec(b.Duration)
	if !ok || durSign != "" {
		return time.Time{}, time.Time{}, &InvalidSpecError{
			Block: b.Name, Field: "duration", Value: b.Duration,
			Reason: "expected unsigned HH:MM",
		}
	}
	if durMin <= 0 {
		return time.Time{}, time.Time{}, &InvalidSpecError{
			Block: b.Name, Field: "duration", Value: b.Duration,
			Reason: "duration must be positive",
		}
	}

	var start time.Time
	switch sign {
	case "+":
		start = wake.At(date).Add(time.Duration(startMin) * time.Minute)
	case "-":
		start = sleep.At(date).Add(-time.Duration(startMin) * time.Minute)
	default:
		start = domain.ClockTime(startMin).At(date)
	}

	end := start.Add(time.Duration(durMin) * time.Minute)
	return start, end, nil
}
