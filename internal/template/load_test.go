package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4tyn0/HAL9001/internal/domain"
)

const sampleTemplate = `{
	"name": "weekday",
	"wake_time": "07:00",
	"sleep_time": "23:00",
	"time_blocks": [
		{"name": "Morning routine", "start": "+00:00", "duration": "00:30", "type": "routine"},
		{"name": "Deep work", "start": "09:00", "duration": "02:00", "type": "work", "project_id": "proj-1"},
		{"name": "Wind down", "start": "-01:00", "duration": "00:45", "type": "rest"}
	]
}`

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule_template.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTemplate(t *testing.T) {
	tpl, err := LoadTemplate(writeTemplate(t, sampleTemplate))
	require.NoError(t, err)

	assert.Equal(t, "weekday", tpl.Name)
	assert.Equal(t, "07:00", tpl.WakeTime)
	assert.Equal(t, "23:00", tpl.SleepTime)
	require.Len(t, tpl.TimeBlocks, 3)
	assert.Equal(t, "Deep work", tpl.TimeBlocks[1].Name)
	require.NotNil(t, tpl.TimeBlocks[1].ProjectID)
	assert.Equal(t, "proj-1", *tpl.TimeBlocks[1].ProjectID)
}

func TestLoadTemplate_MissingFile(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadTemplate_MalformedJSON(t *testing.T) {
	_, err := LoadTemplate(writeTemplate(t, `{"wake_time": `))
	assert.Error(t, err)
}

func TestValidateTemplate_Valid(t *testing.T) {
	tpl, err := LoadTemplate(writeTemplate(t, sampleTemplate))
	require.NoError(t, err)
	assert.Empty(t, ValidateTemplate(tpl))
}

func TestValidateTemplate_CollectsAllErrors(t *testing.T) {
	tpl := &ScheduleTemplate{
		WakeTime:  "7am",
		SleepTime: "25:00",
		TimeBlocks: []TimeBlockConfig{
			{Name: "", Start: "", Duration: "01:00", Type: "naptime"},
		},
	}
	errs := ValidateTemplate(tpl)
	require.Len(t, errs, 5)
	assert.Contains(t, errs[0].Error(), "wake_time")
	assert.Contains(t, errs[1].Error(), "sleep_time")
	assert.Contains(t, errs[4].Error(), "naptime")
}

func TestValidateTemplate_NoBlocks(t *testing.T) {
	tpl := &ScheduleTemplate{WakeTime: "07:00", SleepTime: "23:00"}
	errs := ValidateTemplate(tpl)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one time block")
}

func TestBlocks_DefaultsTypeToTask(t *testing.T) {
	tpl := &ScheduleTemplate{
		WakeTime:  "07:00",
		SleepTime: "23:00",
		TimeBlocks: []TimeBlockConfig{
			{Name: "Untyped", Start: "10:00", Duration: "01:00"},
			{Name: "Typed", Start: "12:00", Duration: "01:00", Type: "meal"},
		},
	}
	blocks := tpl.Blocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, domain.ItemTask, blocks[0].Type)
	assert.Equal(t, domain.ItemMeal, blocks[1].Type)
}

func TestAnchors(t *testing.T) {
	tpl := &ScheduleTemplate{WakeTime: "06:30", SleepTime: "22:15"}
	wake, sleep, err := tpl.Anchors()
	require.NoError(t, err)
	assert.Equal(t, "06:30", wake.String())
	assert.Equal(t, "22:15", sleep.String())

	tpl.SleepTime = "bad"
	_, _, err = tpl.Anchors()
	assert.Error(t, err)
}
