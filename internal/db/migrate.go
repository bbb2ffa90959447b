package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL DEFAULT 'not_started'
		              CHECK(status IN ('not_started','in_progress','done')),
		priority      INTEGER NOT NULL DEFAULT 0,
		due_date      TEXT,
		estimated_min INTEGER NOT NULL DEFAULT 0,
		xp_reward     INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL DEFAULT 'not_started'
		              CHECK(status IN ('not_started','in_progress','done')),
		priority      INTEGER NOT NULL DEFAULT 0,
		estimated_min INTEGER NOT NULL DEFAULT 0,
		xp_reward     INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,

	`CREATE TABLE IF NOT EXISTS day_schedules (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		date       TEXT NOT NULL,
		wake_time  TEXT NOT NULL,
		sleep_time TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE(user_id, date)
	)`,

	// project_id/task_id are weak references: the schedule engine records
	// the association but does not own project or task lifecycle, so no
	// foreign keys on them.
	`CREATE TABLE IF NOT EXISTS schedule_items (
		id          TEXT PRIMARY KEY,
		schedule_id TEXT NOT NULL REFERENCES day_schedules(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		type        TEXT NOT NULL DEFAULT 'task',
		project_id  TEXT,
		task_id     TEXT,
		completed   INTEGER NOT NULL DEFAULT 0,
		xp_gained   INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_items_schedule ON schedule_items(schedule_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_items_start ON schedule_items(start_time)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id          TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		start_date  TEXT NOT NULL,
		end_date    TEXT,
		status      TEXT NOT NULL DEFAULT 'in_progress'
		            CHECK(status IN ('in_progress','achieved','abandoned')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS xp_log (
		id     TEXT PRIMARY KEY,
		date   TEXT NOT NULL,
		player TEXT NOT NULL,
		skill  TEXT NOT NULL DEFAULT '',
		amount INTEGER NOT NULL,
		source TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_xp_log_date ON xp_log(date)`,

	`CREATE TABLE IF NOT EXISTS player_profile (
		id       TEXT PRIMARY KEY DEFAULT 'default',
		name     TEXT NOT NULL DEFAULT 'Player',
		total_xp INTEGER NOT NULL DEFAULT 0,
		level    INTEGER NOT NULL DEFAULT 0
	)`,

	// Seed the single local player row
	`INSERT OR IGNORE INTO player_profile (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS player_skills (
		player_id TEXT NOT NULL REFERENCES player_profile(id) ON DELETE CASCADE,
		name      TEXT NOT NULL,
		level     INTEGER NOT NULL DEFAULT 0,
		xp        INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (player_id, name)
	)`,
}
