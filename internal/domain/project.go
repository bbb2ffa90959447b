package domain

import (
	"fmt"
	"time"
)

type Project struct {
	ID           string
	Name         string
	Description  string
	Status       ProjectStatus
	Priority     int
	DueDate      *time.Time
	EstimatedMin int
	XPReward     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks fields supplied at creation time.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if p.Priority < 0 {
		return fmt.Errorf("project priority must not be negative")
	}
	if p.XPReward < 0 {
		return fmt.Errorf("project xp reward must not be negative")
	}
	return nil
}

// DisplayID returns a truncated identifier for table output.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
