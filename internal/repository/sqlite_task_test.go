package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/testutil"
)

// taskTestSetup creates the project scaffolding needed by task tests.
func taskTestSetup(t *testing.T) (*SQLiteTaskRepo, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	projRepo := NewSQLiteProjectRepo(database)
	proj := testutil.NewTestProject("Thesis")
	require.NoError(t, projRepo.Create(ctx, proj))

	return NewSQLiteTaskRepo(database), proj.ID
}

func TestTaskRepo_CreateAndGetByID(t *testing.T) {
	repo, projID := taskTestSetup(t)
	ctx := context.Background()

	task := testutil.NewTestTask(projID, "Write intro", testutil.WithTaskXP(30), testutil.WithEstimatedMin(90))
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write intro", fetched.Name)
	assert.Equal(t, projID, fetched.ProjectID)
	assert.Equal(t, 30, fetched.XPReward)
	assert.Equal(t, 90, fetched.EstimatedMin)
	assert.Equal(t, domain.TaskNotStarted, fetched.Status)
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := taskTestSetup(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_Create_UnknownProject(t *testing.T) {
	repo, _ := taskTestSetup(t)
	ctx := context.Background()

	task := testutil.NewTestTask("no-such-project", "Orphan")
	err := repo.Create(ctx, task)
	assert.Error(t, err)
}

func TestTaskRepo_ListByProject(t *testing.T) {
	repo, projID := taskTestSetup(t)
	ctx := context.Background()

	low := testutil.NewTestTask(projID, "Low priority")
	low.Priority = 1
	high := testutil.NewTestTask(projID, "High priority")
	high.Priority = 5
	require.NoError(t, repo.Create(ctx, low))
	require.NoError(t, repo.Create(ctx, high))

	list, err := repo.ListByProject(ctx, projID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Ordered by priority, highest first.
	assert.Equal(t, "High priority", list[0].Name)
	assert.Equal(t, "Low priority", list[1].Name)
}

func TestTaskRepo_Update(t *testing.T) {
	repo, projID := taskTestSetup(t)
	ctx := context.Background()

	task := testutil.NewTestTask(projID, "Write intro")
	require.NoError(t, repo.Create(ctx, task))

	task.Status = domain.TaskDone
	require.NoError(t, repo.Update(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, fetched.Status)
}

func TestTaskRepo_Delete(t *testing.T) {
	repo, projID := taskTestSetup(t)
	ctx := context.Background()

	task := testutil.NewTestTask(projID, "Write intro")
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
