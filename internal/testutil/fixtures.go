package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/m4tyn0/HAL9001/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectDueDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.DueDate = &d
	}
}

func WithProjectXP(xp int) ProjectOption {
	return func(p *domain.Project) {
		p.XPReward = xp
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.ProjectNotStarted,
		Priority:  1,
		XPReward:  50,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithTaskXP(xp int) TaskOption {
	return func(t *domain.Task) {
		t.XPReward = xp
	}
}

func WithEstimatedMin(m int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedMin = m
	}
}

func NewTestTask(projectID, name string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Status:    domain.TaskNotStarted,
		Priority:  1,
		XPReward:  20,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalStatus(s domain.GoalStatus) GoalOption {
	return func(g *domain.Goal) {
		g.Status = s
	}
}

func WithGoalEndDate(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.EndDate = &d
	}
}

func NewTestGoal(description string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC()
	g := &domain.Goal{
		ID:          uuid.New().String(),
		Description: description,
		StartDate:   now.AddDate(0, 0, -7),
		Status:      domain.GoalInProgress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Schedule item options
type ItemOption func(*domain.ScheduleItem)

func WithItemType(t domain.ItemType) ItemOption {
	return func(i *domain.ScheduleItem) {
		i.Type = t
	}
}

func WithItemProject(projectID string) ItemOption {
	return func(i *domain.ScheduleItem) {
		i.ProjectID = &projectID
	}
}

func WithItemTask(taskID string) ItemOption {
	return func(i *domain.ScheduleItem) {
		i.TaskID = &taskID
	}
}

func WithCompleted(xpGained int) ItemOption {
	return func(i *domain.ScheduleItem) {
		i.Completed = true
		i.XPGained = xpGained
	}
}

// NewTestItem builds an item on the given date spanning [startClock, startClock+minutes).
func NewTestItem(date time.Time, name, startClock string, minutes int, opts ...ItemOption) domain.ScheduleItem {
	start, err := domain.ParseClock(startClock)
	if err != nil {
		panic(err)
	}
	i := domain.ScheduleItem{
		ID:        uuid.New().String(),
		Name:      name,
		StartTime: start.At(date),
		EndTime:   start.At(date).Add(time.Duration(minutes) * time.Minute),
		Type:      domain.ItemTask,
	}
	for _, opt := range opts {
		opt(&i)
	}
	return i
}

// NewTestSchedule builds a schedule for userID on date with the given items.
// Wake and sleep default to 07:00 and 23:00.
func NewTestSchedule(userID string, date time.Time, items ...domain.ScheduleItem) *domain.DaySchedule {
	now := time.Now().UTC()
	s := &domain.DaySchedule{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		WakeTime:  domain.ClockTime(7 * 60),
		SleepTime: domain.ClockTime(23 * 60),
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := range s.Items {
		s.Items[i].ScheduleID = s.ID
	}
	return s
}
