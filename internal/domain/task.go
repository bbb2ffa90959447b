package domain

import (
	"fmt"
	"time"
)

type Task struct {
	ID           string
	ProjectID    string
	Name         string
	Description  string
	Status       TaskStatus
	Priority     int
	EstimatedMin int
	XPReward     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks fields supplied at creation time.
func (t *Task) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("task name must not be empty")
	}
	if t.ProjectID == "" {
		return fmt.Errorf("task project id must not be empty")
	}
	if t.XPReward < 0 {
		return fmt.Errorf("task xp reward must not be negative")
	}
	return nil
}

// DisplayID returns a truncated identifier for table output.
func (t *Task) DisplayID() string {
	if len(t.ID) >= 8 {
		return t.ID[:8]
	}
	return t.ID
}
