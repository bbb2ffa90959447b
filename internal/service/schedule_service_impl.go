package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/m4tyn0/HAL9001/internal/db"
	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/repository"
	"github.com/m4tyn0/HAL9001/internal/schedule"
	"github.com/m4tyn0/HAL9001/internal/template"
	"github.com/m4tyn0/HAL9001/internal/xp"
)

type scheduleService struct {
	userID       string
	templatePath string
	schedules    repository.ScheduleRepo
	uow          db.UnitOfWork
	log          zerolog.Logger
}

func NewScheduleService(userID, templatePath string, schedules repository.ScheduleRepo, uow db.UnitOfWork, log zerolog.Logger) ScheduleService {
	return &scheduleService{
		userID:       userID,
		templatePath: templatePath,
		schedules:    schedules,
		uow:          uow,
		log:          log,
	}
}

// dayOf truncates an instant to its calendar date.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *scheduleService) Generate(ctx context.Context, date time.Time) (*domain.DaySchedule, error) {
	tpl, err := template.LoadTemplate(s.templatePath)
	if err != nil {
		return nil, fmt.Errorf("loading schedule template: %w", err)
	}
	if errs := template.ValidateTemplate(tpl); len(errs) > 0 {
		return nil, fmt.Errorf("invalid schedule template: %w", errors.Join(errs...))
	}
	wake, sleep, err := tpl.Anchors()
	if err != nil {
		return nil, err
	}

	built, err := schedule.Build(tpl.Blocks(), date, wake, sleep)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	built.ID = uuid.New().String()
	built.UserID = s.userID
	built.CreatedAt = now
	built.UpdatedAt = now
	for i := range built.Items {
		built.Items[i].ID = uuid.New().String()
		built.Items[i].ScheduleID = built.ID
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		_, err := repository.NewSQLiteScheduleRepo(tx).Upsert(ctx, built)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("date", built.DateKey()).
		Int("items", len(built.Items)).
		Msg("schedule generated")
	return built, nil
}

func (s *scheduleService) Get(ctx context.Context, date time.Time) (*domain.DaySchedule, error) {
	return s.schedules.GetByDate(ctx, s.userID, dayOf(date))
}

func (s *scheduleService) CompleteItem(ctx context.Context, itemID string) (*CompletionResult, error) {
	var result *CompletionResult

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		schedRepo := repository.NewSQLiteScheduleRepo(tx)
		taskRepo := repository.NewSQLiteTaskRepo(tx)

		item, err := schedRepo.GetItem(ctx, itemID)
		if err != nil {
			return err
		}

		award, linkedTask, err := itemAward(ctx, taskRepo, item)
		if err != nil {
			return err
		}

		if err := schedRepo.UpdateItemCompletion(ctx, itemID, true, award); err != nil {
			return err
		}

		// Completing a scheduled task block completes the task itself.
		if linkedTask != nil && linkedTask.Status != domain.TaskDone {
			linkedTask.Status = domain.TaskDone
			linkedTask.UpdatedAt = time.Now().UTC()
			if err := taskRepo.Update(ctx, linkedTask); err != nil {
				return err
			}
		}

		profile, leveledUp, err := awardXP(ctx, tx, award, "schedule_item:"+item.Name)
		if err != nil {
			return err
		}

		item.Completed = true
		item.XPGained = award
		result = &CompletionResult{
			Item:      item,
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

	s.log.Info().
		Str("item", result.Item.Name).
		Int("xp", result.XPAwarded).
		Int("level", result.Level).
		Msg("schedule item completed")
	return result, nil
}

func (s *scheduleService) UncompleteItem(ctx context.Context, itemID string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		schedRepo := repository.NewSQLiteScheduleRepo(tx)

		item, err := schedRepo.GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		if !item.Completed {
			return nil
		}

		if err := schedRepo.UpdateItemCompletion(ctx, itemID, false, 0); err != nil {
			return err
		}
		// The ledger stays append-only: the reversal is its own entry.
		_, _, err = awardXP(ctx, tx, -item.XPGained, "schedule_item:"+item.Name)
		return err
	})
}

func (s *scheduleService) CompletionRate(ctx context.Context, date time.Time) (float64, error) {
	sched, err := s.Get(ctx, date)
	if err != nil {
		return 0, err
	}
	return schedule.CompletionRate(sched), nil
}

// itemAward resolves the XP value of an item. Items linked to a task use
// the task's reward; unlinked items fall back to per-type constants.
func itemAward(ctx context.Context, tasks repository.TaskRepo, item *domain.ScheduleItem) (int, *domain.Task, error) {
	if item.TaskID != nil {
		t, err := tasks.GetByID(ctx, *item.TaskID)
		switch {
		case err == nil:
			if t.XPReward > 0 {
				return t.XPReward, t, nil
			}
			return xp.TaskItemXP, t, nil
		case !errors.Is(err, repository.ErrNotFound):
			return 0, nil, err
		}
		// A dangling task link still earns the type default.
	}

	switch item.Type {
	case domain.ItemWork:
		return xp.WorkItemXP, nil, nil
	case domain.ItemTask:
		return xp.TaskItemXP, nil, nil
	default:
		return xp.BaseItemXP, nil, nil
	}
}

// awardXP appends a ledger entry and folds the amount into the player
// profile, recomputing the level. Must run inside the caller's
// transaction so the ledger and the profile never diverge.
func awardXP(ctx context.Context, tx db.DBTX, amount int, source string) (*domain.PlayerProfile, bool, error) {
	players := repository.NewSQLitePlayerRepo(tx)
	profile, err := players.Get(ctx)
	if err != nil {
		return nil, false, err
	}

	profile.TotalXP += amount
	if profile.TotalXP < 0 {
		profile.TotalXP = 0
	}
	newLevel := xp.LevelForXP(profile.TotalXP)
	leveledUp := newLevel > profile.Level
	profile.Level = newLevel

	if err := players.Upsert(ctx, profile); err != nil {
		return nil, false, err
	}

	entry := &domain.XPEntry{
		ID:     uuid.New().String(),
		Date:   time.Now().UTC(),
		Player: profile.Name,
		Amount: amount,
		Source: source,
	}
	if err := repository.NewSQLiteXPLogRepo(tx).Append(ctx, entry); err != nil {
		return nil, false, err
	}
	return profile, leveledUp, nil
}
