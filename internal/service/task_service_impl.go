package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m4tyn0/HAL9001/internal/db"
	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/repository"
	"github.com/m4tyn0/HAL9001/internal/xp"
)

type taskService struct {
	tasks repository.TaskRepo
	uow   db.UnitOfWork
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, uow: uow}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskNotStarted
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Complete(ctx context.Context, id string) (*CompletionResult, error) {
	var result *CompletionResult

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		taskRepo := repository.NewSQLiteTaskRepo(tx)

		t, err := taskRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if t.Status == domain.TaskDone {
			return fmt.Errorf("task %s: %w", id, repository.ErrAlreadyCompleted)
		}

		t.Status = domain.TaskDone
		t.UpdatedAt = time.Now().UTC()
		if err := taskRepo.Update(ctx, t); err != nil {
			return err
		}

		award := t.XPReward
		if award <= 0 {
			award = xp.TaskItemXP
		}
		profile, leveledUp, err := awardXP(ctx, tx, award, "task:"+t.Name)
		if err != nil {
			return err
		}

		result = &CompletionResult{
			XPAwarded: award,
			TotalXP:   profile.TotalXP,
			Level:     profile.Level,
			LeveledUp: leveledUp,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
