package service

import (
	"context"
	"fmt"

	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/repository"
)

type playerService struct {
	players repository.PlayerRepo
	xpLog   repository.XPLogRepo
}

func NewPlayerService(players repository.PlayerRepo, xpLog repository.XPLogRepo) PlayerService {
	return &playerService{players: players, xpLog: xpLog}
}

func (s *playerService) Profile(ctx context.Context) (*domain.PlayerProfile, error) {
	return s.players.Get(ctx)
}

func (s *playerService) Rename(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("player name must not be empty")
	}
	profile, err := s.players.Get(ctx)
	if err != nil {
		return err
	}
	profile.Name = name
	return s.players.Upsert(ctx, profile)
}

func (s *playerService) AddSkill(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("skill name must not be empty")
	}
	profile, err := s.players.Get(ctx)
	if err != nil {
		return err
	}
	if profile.FindSkill(name) != nil {
		return fmt.Errorf("skill %q already exists", name)
	}
	profile.Skills = append(profile.Skills, domain.Skill{Name: name})
	return s.players.Upsert(ctx, profile)
}

func (s *playerService) RecentXP(ctx context.Context, days int) ([]*domain.XPEntry, error) {
	return s.xpLog.ListRecent(ctx, days)
}
