package domain

import (
	"fmt"
	"time"
)

type Goal struct {
	ID          string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Status      GoalStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (g *Goal) Validate() error {
	if g.Description == "" {
		return fmt.Errorf("goal description must not be empty")
	}
	if g.EndDate != nil && g.EndDate.Before(g.StartDate) {
		return fmt.Errorf("goal end date is before its start date")
	}
	return nil
}
