package domain

import "fmt"

// PlayerProfile is the single local player's gamification state.
type PlayerProfile struct {
	Name    string
	TotalXP int
	Level   int
	Skills  []Skill
}

// Skill is one named skill track with its own XP pool and level.
type Skill struct {
	Name  string
	Level int
	XP    int
}

// FindSkill returns the skill with the given name, or nil.
func (p *PlayerProfile) FindSkill(name string) *Skill {
	for i := range p.Skills {
		if p.Skills[i].Name == name {
			return &p.Skills[i]
		}
	}
	return nil
}

func (p *PlayerProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name must not be empty")
	}
	if p.TotalXP < 0 {
		return fmt.Errorf("player total xp must not be negative")
	}
	return nil
}
