package template

// ScheduleTemplate is the top-level JSON day-template structure. It
// declares the wake/sleep anchors for a day and the recurring time
// blocks a generated schedule is assembled from.
type ScheduleTemplate struct {
	Name       string            `json:"name,omitempty"`
	WakeTime   string            `json:"wake_time"`
	SleepTime  string            `json:"sleep_time"`
	TimeBlocks []TimeBlockConfig `json:"time_blocks"`
}

// TimeBlockConfig is one template time block. Start is an absolute
// "HH:MM", a wake-relative "+HH:MM" or a sleep-relative "-HH:MM";
// Duration is an unsigned "HH:MM". ProjectID and TaskID optionally
// link the block to tracked work.
type TimeBlockConfig struct {
	Name      string  `json:"name"`
	Start     string  `json:"start"`
	Duration  string  `json:"duration"`
	Type      string  `json:"type"`
	ProjectID *string `json:"project_id,omitempty"`
	TaskID    *string `json:"task_id,omitempty"`
}
