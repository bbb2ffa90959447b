package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m4tyn0/HAL9001/internal/db"
	"github.com/m4tyn0/HAL9001/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

const goalColumns = `id, description, start_date, end_date, status, created_at, updated_at`

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO goals (`+goalColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ID,
		g.Description,
		g.StartDate.Format(dateLayout),
		nullableTimeToString(g.EndDate, dateLayout),
		string(g.Status),
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	return scanGoal(row)
}

func (r *SQLiteGoalRepo) List(ctx context.Context, status *domain.GoalStatus) ([]*domain.Goal, error) {
	var rows *sql.Rows
	var err error
	if status != nil {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+goalColumns+` FROM goals WHERE status = ? ORDER BY start_date`, string(*status))
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+goalColumns+` FROM goals ORDER BY start_date`)
	}
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) UpdateStatus(ctx context.Context, id string, status domain.GoalStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE goals SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating goal status: %w", err)
	}
	return requireAffected(res, "goal", id)
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return requireAffected(res, "goal", id)
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	var startStr, statusStr, createdStr, updatedStr string
	var endDate sql.NullString

	err := row.Scan(&g.ID, &g.Description, &startStr, &endDate, &statusStr, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	if g.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	g.EndDate = parseNullableTime(endDate, dateLayout)
	g.Status = domain.GoalStatus(statusStr)
	if g.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if g.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &g, nil
}
