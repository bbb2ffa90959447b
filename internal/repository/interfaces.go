package repository

import (
	"context"
	"time"

	"github.com/m4tyn0/HAL9001/internal/domain"
)

// ScheduleRepo is the persistence boundary for day schedules. Upsert
// replaces the whole schedule for (UserID, Date) including items; it
// issues multiple statements and must run inside a transaction (construct
// the repo from a db.DBTX obtained via UnitOfWork) so the replacement is
// all-or-nothing. UpdateItemCompletion is a single compare-and-swap
// statement and is atomic on its own.
type ScheduleRepo interface {
	Upsert(ctx context.Context, s *domain.DaySchedule) (string, error)
	GetByDate(ctx context.Context, userID string, date time.Time) (*domain.DaySchedule, error)
	GetItem(ctx context.Context, itemID string) (*domain.ScheduleItem, error)
	UpdateItemCompletion(ctx context.Context, itemID string, completed bool, xpGained int) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeDone bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context, status *domain.GoalStatus) ([]*domain.Goal, error)
	UpdateStatus(ctx context.Context, id string, status domain.GoalStatus) error
	Delete(ctx context.Context, id string) error
}

// XPLogRepo is the append-only experience ledger.
type XPLogRepo interface {
	Append(ctx context.Context, e *domain.XPEntry) error
	ListRecent(ctx context.Context, days int) ([]*domain.XPEntry, error)
}

type PlayerRepo interface {
	Get(ctx context.Context) (*domain.PlayerProfile, error)
	Upsert(ctx context.Context, p *domain.PlayerProfile) error
}
