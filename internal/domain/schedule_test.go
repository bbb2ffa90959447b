package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func item(name string, startMin, endMin int) ScheduleItem {
	return ScheduleItem{
		Name:      name,
		StartTime: ClockTime(startMin).At(testDate),
		EndTime:   ClockTime(endMin).At(testDate),
		Type:      ItemWork,
	}
}

func validSchedule(items ...ScheduleItem) *DaySchedule {
	return &DaySchedule{
		UserID:    "default",
		Date:      testDate,
		WakeTime:  7 * 60,
		SleepTime: 23 * 60,
		Items:     items,
	}
}

func TestScheduleItem_Validate(t *testing.T) {
	it := item("Deep Work", 9*60, 11*60)
	assert.NoError(t, it.Validate())
}

func TestScheduleItem_Validate_EmptyName(t *testing.T) {
	it := item("", 9*60, 10*60)
	err := it.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestScheduleItem_Validate_EndNotAfterStart(t *testing.T) {
	it := item("Backwards", 10*60, 10*60)
	err := it.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not after")
}

func TestScheduleItem_Validate_XPOnUncompleted(t *testing.T) {
	it := item("Early XP", 9*60, 10*60)
	it.XPGained = 25
	err := it.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uncompleted")
}

func TestScheduleItem_Window(t *testing.T) {
	it := item("Lunch", 12*60, 12*60+45)
	assert.Equal(t, "12:00-12:45", it.Window())
	assert.Equal(t, 45*time.Minute, it.Duration())
}

func TestDaySchedule_Validate(t *testing.T) {
	s := validSchedule(item("Morning", 8*60, 9*60), item("Focus", 9*60, 11*60))
	assert.NoError(t, s.Validate())
}

func TestDaySchedule_Validate_Overlap(t *testing.T) {
	s := validSchedule(item("A", 9*60, 10*60), item("B", 9*60+30, 11*60))
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")
}

func TestDaySchedule_Validate_OutOfOrder(t *testing.T) {
	s := validSchedule(item("Late", 14*60, 15*60), item("Early", 9*60, 10*60))
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of order")
}

func TestDaySchedule_Validate_WrongDate(t *testing.T) {
	s := validSchedule()
	stray := ScheduleItem{
		Name:      "Stray",
		StartTime: time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 11, 10, 0, 0, 0, time.UTC),
		Type:      ItemWork,
	}
	s.Items = append(s.Items, stray)
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside schedule date")
}

func TestDaySchedule_DateKey(t *testing.T) {
	s := validSchedule()
	assert.Equal(t, "2024-01-10", s.DateKey())
}
