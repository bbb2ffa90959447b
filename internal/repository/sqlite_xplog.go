package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/m4tyn0/HAL9001/internal/db"
	"github.com/m4tyn0/HAL9001/internal/domain"
)

// SQLiteXPLogRepo implements XPLogRepo using a SQLite database.
type SQLiteXPLogRepo struct {
	db db.DBTX
}

// NewSQLiteXPLogRepo creates a new SQLiteXPLogRepo.
func NewSQLiteXPLogRepo(conn db.DBTX) *SQLiteXPLogRepo {
	return &SQLiteXPLogRepo{db: conn}
}

func (r *SQLiteXPLogRepo) Append(ctx context.Context, e *domain.XPEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO xp_log (id, date, player, skill, amount, source) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Date.Format(dateLayout),
		e.Player,
		e.Skill,
		e.Amount,
		e.Source,
	)
	if err != nil {
		return fmt.Errorf("appending xp entry: %w", err)
	}
	return nil
}

func (r *SQLiteXPLogRepo) ListRecent(ctx context.Context, days int) ([]*domain.XPEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, player, skill, amount, source FROM xp_log
		 WHERE date >= date('now', ? || ' days')
		 ORDER BY date DESC`,
		fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent xp entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.XPEntry
	for rows.Next() {
		var e domain.XPEntry
		var dateStr string
		if err := rows.Scan(&e.ID, &dateStr, &e.Player, &e.Skill, &e.Amount, &e.Source); err != nil {
			return nil, fmt.Errorf("scanning xp entry: %w", err)
		}
		if e.Date, err = time.Parse(dateLayout, dateStr); err != nil {
			return nil, fmt.Errorf("parsing xp entry date: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating xp entries: %w", err)
	}
	return entries, nil
}
