package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/testutil"
)

var scheduleTestDate = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func scheduleTestSetup(t *testing.T) *SQLiteScheduleRepo {
	t.Helper()
	return NewSQLiteScheduleRepo(testutil.NewTestDB(t))
}

func TestScheduleRepo_UpsertAndGetByDate(t *testing.T) {
	repo := scheduleTestSetup(t)
	ctx := context.Background()

	sched := testutil.NewTestSchedule("default", scheduleTestDate,
		testutil.NewTestItem(scheduleTestDate, "Deep work", "08:00", 90, testutil.WithItemType(domain.ItemWork)),
		testutil.NewTestItem(scheduleTestDate, "Lunch", "12:00", 45, testutil.WithItemType(domain.ItemMeal)),
	)
	id, err := repo.Upsert(ctx, sched)
	require.NoError(t, err)
	assert.Equal(t, sched.ID, id)

	fetched, err := repo.GetByDate(ctx, "default", scheduleTestDate)
	require.NoError(t, err)
	assert.Equal(t, sched.ID, fetched.ID)
	assert.Equal(t, "07:00", fetched.WakeTime.String())
	assert.Equal(t, "23:00", fetched.SleepTime.String())
	require.Len(t, fetched.Items, 2)
	assert.Equal(t, "Deep work", fetched.Items[0].Name)
	assert.Equal(t, domain.ItemWork, fetched.Items[0].Type)
	assert.Equal(t, "08:00-09:30", fetched.Items[0].Window())
	assert.Equal(t, "Lunch", fetched.Items[1].Name)
	assert.False(t, fetched.Items[0].Completed)
}

func TestScheduleRepo_GetByDate_NotFound(t *testing.T) {
	repo := scheduleTestSetup(t)
	ctx := context.Background()

	_, err := repo.GetByDate(ctx, "default", scheduleTestDate)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepo_UpsertReplacesExisting(t *testing.T) {
	repo := scheduleTestSetup(t)
	ctx := context.Background()

	first := testutil.NewTestSchedule("default", scheduleTestDate,
		testutil.NewTestItem(scheduleTestDate, "Old morning", "08:00", 60),
		testutil.NewTestItem(scheduleTestDate, "Old evening", "19:00", 60),
	)
	_, err := repo.Upsert(ctx, first)
	require.NoError(t, err)

	second := testutil.NewTestSchedule("default", scheduleTestDate,
		testutil.NewTestItem(scheduleTestDate, "New morning", "09:00", 30),
	)
	_, err = repo.Upsert(ctx, second)
	require.NoError(t, err)

	fetched, err := repo.GetByDate(ctx, "default", scheduleTestDate)
	require.NoError(t, err)
	assert.Equal(t, second.ID, fetched.ID)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "New morning", fetched.Items[0].Name)

	// Items of the replaced schedule must not survive the cascade.
	_, err = repo.GetItem(ctx, first.Items[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepo_UpsertSameUserDifferentDates(t *testing.T) {
	repo := scheduleTestSetup(t)
	ctx := context.Background()

	day1 := testutil.NewTestSchedule("default", scheduleTestDate,
		testutil.NewTestItem(scheduleTestDate, "Day one", "08:00", 60))
	nextDate := scheduleTestDate.AddDate(0, 0, 1)
	day2 := testutil.NewTestSchedule("default", nextDate,
		testutil.NewTestItem(nextDate, "Day two", "08:00", 60))

	_, err := repo.Upsert(ctx, day1)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, day2)
	require.NoError(t, err)

	fetched1, err := repo.GetByDate(ctx, "default", scheduleTestDate)
	require.NoError(t, err)
	fetched2, err := repo.GetByDate(ctx, "default", nextDate)
	require.NoError(t, err)
	assert.Equal(t, "Day one", fetched1.Items[0].Name)
	assert.Equal(t, "Day two", fetched2.Items[0].Name)
}

func TestScheduleRepo_GetItem(t *testing.T) {
	repo := scheduleTestSetup(t)
	ctx := context.Background()

	proj := "proj-123"
	sched := testutil.NewTestSchedule("default", scheduleTestDate,
		testutil.NewTestItem(scheduleTestDate, "Build feature", "10:00", 120,
			testutil.WithItemType(domain.ItemWork), testutil.WithItemProject(proj)),
	)
	_, err := repo.Upsert(ctx, sched)
	require.NoError(t, err)

	it, err := repo.GetItem(ctx, sched.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Build feature", it.Name)
	assert.Equal(t, sched.ID, it.ScheduleID)
	require.NotNil(t, it.ProjectID)
	assert.Equal(t, proj, *it.ProjectID)
	assert.Nil(t, it.TaskID)
}

func TestScheduleRepo_CompleteItem(t *testing.T) {
	repo := scheduleTestSetup(t)
	ctx := context.Background()

	sched := testutil.NewTestSchedule("default", scheduleTestDate,
		testutil.NewTestItem(scheduleTestDate, "Gym", "17:00", 60, testutil.WithItemType(domain.ItemExercise)),
	)
	_, err := repo.Upsert(ctx, sched)
	require.NoError(t, err)
	itemID := sched.Items[0].ID

	require.NoError(t, repo.UpdateItemCompletion(ctx, itemID, true, 25))

	it, err := repo.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.True(t, it.Completed)
	assert.Equal(t, 25, it.XPGained)
}

func TestScheduleRepo_CompleteItem_Twice(t *testing.T) {
	repo := scheduleTestSetup(t)
	ctx := context.Background()

	sched := testutil.NewTestSchedule("default", scheduleTestDate,
		testutil.NewTestItem(scheduleTestDate, "Gym", "17:00", 60),
	)
	_, err := repo.Upsert(ctx, sched)
	require.NoError(t, err)
	itemID := sched.Items[0].ID

	require.NoError(t, repo.UpdateItemCompletion(ctx, itemID, true, 25))

	err = repo.UpdateItemCompletion(ctx, itemID, true, 99)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	// The first award stands.
	it, err := repo.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.True(t, it.Completed)
	assert.Equal(t, 25, it.XPGained)
}

func TestScheduleRepo_UncompleteItem(t *testing.T) {
	repo := scheduleTestSetup(t)
	ctx := context.Background()

	sched := testutil.NewTestSchedule("default", scheduleTestDate,
		testutil.NewTestItem(scheduleTestDate, "Gym", "17:00", 60, testutil.WithCompleted(25)),
	)
	_, err := repo.Upsert(ctx, sched)
	require.NoError(t, err)
	itemID := sched.Items[0].ID

	require.NoError(t, repo.UpdateItemCompletion(ctx, itemID, false, 0))

	it, err := repo.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.False(t, it.Completed)
	assert.Equal(t, 0, it.XPGained)

	// Completing again after an un-complete is allowed.
	require.NoError(t, repo.UpdateItemCompletion(ctx, itemID, true, 10))
	it, err = repo.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, 10, it.XPGained)
}

func TestScheduleRepo_UpdateItemCompletion_NotFound(t *testing.T) {
	repo := scheduleTestSetup(t)
	ctx := context.Background()

	err := repo.UpdateItemCompletion(ctx, "nonexistent", true, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}
