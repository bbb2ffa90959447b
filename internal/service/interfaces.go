package service

import (
	"context"
	"time"

	"github.com/m4tyn0/HAL9001/internal/domain"
)

// CompletionResult reports the outcome of completing a schedule item,
// including the player progression it triggered.
type CompletionResult struct {
	Item      *domain.ScheduleItem
	XPAwarded int
	TotalXP   int
	Level     int
	LeveledUp bool
}

type ScheduleService interface {
	// Generate builds the schedule for the given date from the
	// configured template and persists it, replacing any prior
	// schedule for that date.
	Generate(ctx context.Context, date time.Time) (*domain.DaySchedule, error)
	Get(ctx context.Context, date time.Time) (*domain.DaySchedule, error)
	CompleteItem(ctx context.Context, itemID string) (*CompletionResult, error)
	UncompleteItem(ctx context.Context, itemID string) error
	CompletionRate(ctx context.Context, date time.Time) (float64, error)
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeDone bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	// Complete marks the task done and awards its XP to the player.
	Complete(ctx context.Context, id string) (*CompletionResult, error)
	Delete(ctx context.Context, id string) error
}

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	List(ctx context.Context, status *domain.GoalStatus) ([]*domain.Goal, error)
	Achieve(ctx context.Context, id string) error
	Abandon(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type PlayerService interface {
	Profile(ctx context.Context) (*domain.PlayerProfile, error)
	Rename(ctx context.Context, name string) error
	AddSkill(ctx context.Context, name string) error
	RecentXP(ctx context.Context, days int) ([]*domain.XPEntry, error)
}

// Routine is one markdown routine file in the data directory.
type Routine struct {
	Name string
	Path string
}

type RoutineService interface {
	List(ctx context.Context) ([]Routine, error)
	Get(ctx context.Context, name string) (string, error)
}
