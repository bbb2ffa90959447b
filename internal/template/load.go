package template

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/schedule"
)

// LoadTemplate reads and parses a schedule template JSON file.
func LoadTemplate(path string) (*ScheduleTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tpl ScheduleTemplate
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("parsing schedule template: %w", err)
	}
	return &tpl, nil
}

// ValidateTemplate checks a ScheduleTemplate for structural errors.
// Returns a slice of errors (empty if valid). Anchor arithmetic and
// overlap detection are not checked here; those are the builder's job.
func ValidateTemplate(tpl *ScheduleTemplate) []error {
	var errs []error

	if _, err := domain.ParseClock(tpl.WakeTime); err != nil {
		errs = append(errs, fmt.Errorf("wake_time: %w", err))
	}
	if _, err := domain.ParseClock(tpl.SleepTime); err != nil {
		errs = append(errs, fmt.Errorf("sleep_time: %w", err))
	}
	if len(tpl.TimeBlocks) == 0 {
		errs = append(errs, fmt.Errorf("at least one time block is required"))
	}

	for i, b := range tpl.TimeBlocks {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("time_block[%d]: name is required", i))
		}
		if b.Start == "" {
			errs = append(errs, fmt.Errorf("time_block[%d]: start is required", i))
		}
		if b.Duration == "" {
			errs = append(errs, fmt.Errorf("time_block[%d]: duration is required", i))
		}
		if b.Type != "" && !domain.ValidItemTypes[b.Type] {
			errs = append(errs, fmt.Errorf("time_block[%d]: unknown type %q", i, b.Type))
		}
	}

	return errs
}

// Blocks converts the template's time blocks into builder input. Blocks
// without an explicit type default to "task".
func (tpl *ScheduleTemplate) Blocks() []schedule.Block {
	blocks := make([]schedule.Block, len(tpl.TimeBlocks))
	for i, b := range tpl.TimeBlocks {
		itemType := domain.ItemType(b.Type)
		if b.Type == "" {
			itemType = domain.ItemTask
		}
		blocks[i] = schedule.Block{
			Name:      b.Name,
			Start:     b.Start,
			Duration:  b.Duration,
			Type:      itemType,
			ProjectID: b.ProjectID,
			TaskID:    b.TaskID,
		}
	}
	return blocks
}

// Anchors parses the template's wake and sleep times. Call
// ValidateTemplate first; parse failures here surface as errors anyway.
func (tpl *ScheduleTemplate) Anchors() (wake, sleep domain.ClockTime, err error) {
	if wake, err = domain.ParseClock(tpl.WakeTime); err != nil {
		return 0, 0, fmt.Errorf("wake_time: %w", err)
	}
	if sleep, err = domain.ParseClock(tpl.SleepTime); err != nil {
		return 0, 0, fmt.Errorf("sleep_time: %w", err)
	}
	return wake, sleep, nil
}
