package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m4tyn0/HAL9001/internal/db"
	"github.com/m4tyn0/HAL9001/internal/domain"
)

// playerID is the fixed row key for the single local player.
const playerID = "default"

// SQLitePlayerRepo implements PlayerRepo using a SQLite database.
type SQLitePlayerRepo struct {
	db db.DBTX
}

// NewSQLitePlayerRepo creates a new SQLitePlayerRepo.
func NewSQLitePlayerRepo(conn db.DBTX) *SQLitePlayerRepo {
	return &SQLitePlayerRepo{db: conn}
}

func (r *SQLitePlayerRepo) Get(ctx context.Context) (*domain.PlayerProfile, error) {
	var p domain.PlayerProfile
	err := r.db.QueryRowContext(ctx,
		`SELECT name, total_xp, level FROM player_profile WHERE id = ?`, playerID,
	).Scan(&p.Name, &p.TotalXP, &p.Level)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("player profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning player profile: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT name, level, xp FROM player_skills WHERE player_id = ? ORDER BY name`, playerID)
	if err != nil {
		return nil, fmt.Errorf("listing player skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.Name, &s.Level, &s.XP); err != nil {
			return nil, fmt.Errorf("scanning player skill: %w", err)
		}
		p.Skills = append(p.Skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating player skills: %w", err)
	}
	return &p, nil
}

// Upsert writes the profile row and replaces the skill rows. Run inside
// a transaction when skills must change together with the profile.
func (r *SQLitePlayerRepo) Upsert(ctx context.Context, p *domain.PlayerProfile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO player_profile (id, name, total_xp, level) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, total_xp = excluded.total_xp, level = excluded.level`,
		playerID, p.Name, p.TotalXP, p.Level)
	if err != nil {
		return fmt.Errorf("upserting player profile: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM player_skills WHERE player_id = ?`, playerID); err != nil {
		return fmt.Errorf("clearing player skills: %w", err)
	}
	for _, s := range p.Skills {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO player_skills (player_id, name, level, xp) VALUES (?, ?, ?, ?)`,
			playerID, s.Name, s.Level, s.XP); err != nil {
			return fmt.Errorf("inserting player skill %q: %w", s.Name, err)
		}
	}
	return nil
}
