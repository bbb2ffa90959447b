package testutil

import (
	"database/sql"
	"testing"

	"github.com/m4tyn0/HAL9001/internal/db"
)

// NewTestDB opens a migrated in-memory planner database that is torn
// down with the test. It carries the seeded default player row, so
// player and XP tests start from the same state a fresh install does.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps a test database in a real UnitOfWork.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
