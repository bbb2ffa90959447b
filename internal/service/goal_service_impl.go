package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/repository"
)

type goalService struct {
	goals repository.GoalRepo
}

func NewGoalService(goals repository.GoalRepo) GoalService {
	return &goalService{goals: goals}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	now := time.Now().UTC()
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.Status == "" {
		g.Status = domain.GoalInProgress
	}
	if g.StartDate.IsZero() {
		g.StartDate = now
	}
	if err := g.Validate(); err != nil {
		return err
	}
	g.CreatedAt = now
	g.UpdatedAt = now
	return s.goals.Create(ctx, g)
}

func (s *goalService) List(ctx context.Context, status *domain.GoalStatus) ([]*domain.Goal, error) {
	return s.goals.List(ctx, status)
}

func (s *goalService) Achieve(ctx context.Context, id string) error {
	return s.goals.UpdateStatus(ctx, id, domain.GoalAchieved)
}

func (s *goalService) Abandon(ctx context.Context, id string) error {
	return s.goals.UpdateStatus(ctx, id, domain.GoalAbandoned)
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	return s.goals.Delete(ctx, id)
}
