package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m4tyn0/HAL9001/internal/db"
	"github.com/m4tyn0/HAL9001/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

const itemColumns = `id, schedule_id, name, start_time, end_time, type, project_id, task_id, completed, xp_gained`

func (r *SQLiteScheduleRepo) Upsert(ctx context.Context, s *domain.DaySchedule) (string, error) {
	// Deleting the schedule row cascades to its items, so regeneration
	// fully replaces the prior schedule and never merges.
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM day_schedules WHERE user_id = ? AND date = ?`,
		s.UserID, s.Date.Format(dateLayout),
	)
	if err != nil {
		return "", fmt.Errorf("deleting prior schedule: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO day_schedules (id, user_id, date, wake_time, sleep_time, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID,
		s.UserID,
		s.Date.Format(dateLayout),
		s.WakeTime.String(),
		s.SleepTime.String(),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("inserting schedule: %w", err)
	}

	for i := range s.Items {
		it := &s.Items[i]
		it.ScheduleID = s.ID
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO schedule_items (`+itemColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID,
			it.ScheduleID,
			it.Name,
			it.StartTime.Format(time.RFC3339),
			it.EndTime.Format(time.RFC3339),
			string(it.Type),
			nullableString(it.ProjectID),
			nullableString(it.TaskID),
			boolToInt(it.Completed),
			it.XPGained,
		)
		if err != nil {
			return "", fmt.Errorf("inserting schedule item %q: %w", it.Name, err)
		}
	}

	return s.ID, nil
}

func (r *SQLiteScheduleRepo) GetByDate(ctx context.Context, userID string, date time.Time) (*domain.DaySchedule, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, date, wake_time, sleep_time, created_at, updated_at
		 FROM day_schedules WHERE user_id = ? AND date = ?`,
		userID, date.Format(dateLayout),
	)

	var s domain.DaySchedule
	var dateStr, wakeStr, sleepStr, createdStr, updatedStr string
	err := row.Scan(&s.ID, &s.UserID, &dateStr, &wakeStr, &sleepStr, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule for %s: %w", date.Format(dateLayout), ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}

	if s.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing schedule date: %w", err)
	}
	if s.WakeTime, err = domain.ParseClock(wakeStr); err != nil {
		return nil, fmt.Errorf("parsing wake time: %w", err)
	}
	if s.SleepTime, err = domain.ParseClock(sleepStr); err != nil {
		return nil, fmt.Errorf("parsing sleep time: %w", err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM schedule_items WHERE schedule_id = ? ORDER BY start_time`,
		s.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing schedule items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		s.Items = append(s.Items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule items: %w", err)
	}

	return &s, nil
}

func (r *SQLiteScheduleRepo) GetItem(ctx context.Context, itemID string) (*domain.ScheduleItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM schedule_items WHERE id = ?`, itemID)
	it, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("schedule item %s: %w", itemID, ErrNotFound)
	}
	return it, err
}

// UpdateItemCompletion marks the item completed (or not) and records the
// XP awarded. Completing an already-completed item is rejected with
// ErrAlreadyCompleted; the stored XP stays at the first award. The check
// and write are one conditional UPDATE, so concurrent completions of the
// same item cannot both win.
func (r *SQLiteScheduleRepo) UpdateItemCompletion(ctx context.Context, itemID string, completed bool, xpGained int) error {
	var res sql.Result
	var err error
	if completed {
		res, err = r.db.ExecContext(ctx,
			`UPDATE schedule_items SET completed = 1, xp_gained = ? WHERE id = ? AND completed = 0`,
			xpGained, itemID)
	} else {
		res, err = r.db.ExecContext(ctx,
			`UPDATE schedule_items SET completed = 0, xp_gained = 0 WHERE id = ?`,
			itemID)
	}
	if err != nil {
		return fmt.Errorf("updating item completion: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// Zero rows: either the item is missing or it was already completed.
	var done int
	err = r.db.QueryRowContext(ctx,
		`SELECT completed FROM schedule_items WHERE id = ?`, itemID).Scan(&done)
	if err == sql.ErrNoRows {
		return fmt.Errorf("schedule item %s: %w", itemID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("checking item state: %w", err)
	}
	return fmt.Errorf("schedule item %s: %w", itemID, ErrAlreadyCompleted)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.ScheduleItem, error) {
	var it domain.ScheduleItem
	var startStr, endStr, typeStr string
	var projectID, taskID sql.NullString
	var completed int

	err := row.Scan(
		&it.ID, &it.ScheduleID, &it.Name, &startStr, &endStr, &typeStr,
		&projectID, &taskID, &completed, &it.XPGained,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning schedule item: %w", err)
	}

	if it.StartTime, err = time.Parse(time.RFC3339, startStr); err != nil {
		return nil, fmt.Errorf("parsing item start: %w", err)
	}
	if it.EndTime, err = time.Parse(time.RFC3339, endStr); err != nil {
		return nil, fmt.Errorf("parsing item end: %w", err)
	}
	it.Type = domain.ItemType(typeStr)
	it.ProjectID = stringPtr(projectID)
	it.TaskID = stringPtr(taskID)
	it.Completed = intToBool(completed)

	return &it, nil
}
