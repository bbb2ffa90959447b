package schedule

import (
	"testing"

	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBlocks() []Block {
	return []Block{
		{Name: "Morning Routine", Start: "+00:00", Duration: "01:00", Type: domain.ItemRoutine},
		{Name: "Deep Work", Start: "09:00", Duration: "02:00", Type: domain.ItemWork},
		{Name: "Lunch", Start: "12:00", Duration: "00:45", Type: domain.ItemMeal},
		{Name: "Wind Down", Start: "-01:00", Duration: "01:00", Type: domain.ItemRest},
	}
}

func TestBuild_SortedNonOverlapping(t *testing.T) {
	s, err := Build(defaultBlocks(), refDate, wakeTime, sleepTime)
	require.NoError(t, err)
	require.Len(t, s.Items, 4)

	for i := 1; i < len(s.Items); i++ {
		prev, cur := s.Items[i-1], s.Items[i]
		assert.False(t, cur.StartTime.Before(prev.StartTime), "items must be sorted by start")
		assert.False(t, cur.StartTime.Before(prev.EndTime), "item %q must not overlap %q", cur.Name, prev.Name)
	}

	assert.NoError(t, s.Validate())
}

func TestBuild_SleepRelativeSortsLast(t *testing.T) {
	// "Wind Down" is declared before "Lunch" chronologically resolves;
	// the builder must sort by resolved start, not template order.
	blocks := []Block{
		{Name: "Wind Down", Start: "-01:00", Duration: "01:00", Type: domain.ItemRest},
		{Name: "Breakfast", Start: "+00:30", Duration: "00:30", Type: domain.ItemMeal},
	}

	s, err := Build(blocks, refDate, wakeTime, sleepTime)
	require.NoError(t, err)
	require.Len(t, s.Items, 2)
	assert.Equal(t, "Breakfast", s.Items[0].Name)
	assert.Equal(t, "Wind Down", s.Items[1].Name)
}

func TestBuild_BackToBackAllowed(t *testing.T) {
	blocks := []Block{
		{Name: "A", Start: "09:00", Duration: "01:00", Type: domain.ItemWork},
		{Name: "B", Start: "10:00", Duration: "01:00", Type: domain.ItemWork},
	}

	s, err := Build(blocks, refDate, wakeTime, sleepTime)
	require.NoError(t, err)
	assert.Len(t, s.Items, 2)
}

func TestBuild_OneMinuteOverlapConflicts(t *testing.T) {
	blocks := []Block{
		{Name: "A", Start: "09:00", Duration: "01:00", Type: domain.ItemWork},
		{Name: "B", Start: "09:59", Duration: "01:00", Type: domain.ItemWork},
	}

	_, err := Build(blocks, refDate, wakeTime, sleepTime)
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "A", conflict.BlockA)
	assert.Equal(t, "B", conflict.BlockB)
	assert.Equal(t, "09:00-10:00", conflict.WindowA)
	assert.Equal(t, "09:59-10:59", conflict.WindowB)
}

func TestBuild_ConflictAcrossAnchorKinds(t *testing.T) {
	// Wake 07:00 + 02:00 = 09:00-11:00 collides with the absolute 10:30 slot.
	blocks := []Block{
		{Name: "Study", Start: "+02:00", Duration: "02:00", Type: domain.ItemWork},
		{Name: "Errand", Start: "10:30", Duration: "00:30", Type: domain.ItemTask},
	}

	_, err := Build(blocks, refDate, wakeTime, sleepTime)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Study", conflict.BlockA)
	assert.Equal(t, "Errand", conflict.BlockB)
}

func TestBuild_InvalidBlockFailsWholeBuild(t *testing.T) {
	blocks := append(defaultBlocks(), Block{Name: "Broken", Start: "nope", Duration: "00:30"})

	_, err := Build(blocks, refDate, wakeTime, sleepTime)
	var specErr *InvalidSpecError
	require.ErrorAs(t, err, &specErr)
	assert.Equal(t, "Broken", specErr.Block)
}

func TestBuild_WindowLeavingDayRejected(t *testing.T) {
	blocks := []Block{
		{Name: "Overnight", Start: "23:30", Duration: "01:00", Type: domain.ItemRest},
	}

	_, err := Build(blocks, refDate, wakeTime, sleepTime)
	var specErr *InvalidSpecError
	require.ErrorAs(t, err, &specErr)
	assert.Contains(t, specErr.Reason, "calendar day")
}

func TestBuild_EmptyTemplate(t *testing.T) {
	s, err := Build(nil, refDate, wakeTime, sleepTime)
	require.NoError(t, err)
	assert.Empty(t, s.Items)
	assert.Equal(t, wakeTime, s.WakeTime)
	assert.Equal(t, sleepTime, s.SleepTime)
}

func TestCompletionRate(t *testing.T) {
	s, err := Build(defaultBlocks(), refDate, wakeTime, sleepTime)
	require.NoError(t, err)

	assert.Equal(t, 0.0, CompletionRate(s))

	s.Items[0].Completed = true
	assert.Equal(t, 0.25, CompletionRate(s))

	for i := range s.Items {
		s.Items[i].Completed = true
	}
	assert.Equal(t, 1.0, CompletionRate(s))
}

func TestCompletionRate_EmptySchedule(t *testing.T) {
	s := &domain.DaySchedule{}
	assert.Equal(t, 0.0, CompletionRate(s))
}
