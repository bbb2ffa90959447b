package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4tyn0/HAL9001/internal/repository"
	"github.com/m4tyn0/HAL9001/internal/testutil"
)

func TestPlayerService_ProfileAndRename(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPlayerService(
		repository.NewSQLitePlayerRepo(database),
		repository.NewSQLiteXPLogRepo(database),
	)
	ctx := context.Background()

	profile, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Player", profile.Name)

	require.NoError(t, svc.Rename(ctx, "M4t"))
	profile, err = svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "M4t", profile.Name)

	err = svc.Rename(ctx, "")
	assert.Error(t, err)
}

func TestPlayerService_AddSkill(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPlayerService(
		repository.NewSQLitePlayerRepo(database),
		repository.NewSQLiteXPLogRepo(database),
	)
	ctx := context.Background()

	require.NoError(t, svc.AddSkill(ctx, "coding"))
	require.NoError(t, svc.AddSkill(ctx, "fitness"))

	profile, err := svc.Profile(ctx)
	require.NoError(t, err)
	require.Len(t, profile.Skills, 2)
	assert.NotNil(t, profile.FindSkill("coding"))
	assert.NotNil(t, profile.FindSkill("fitness"))

	err = svc.AddSkill(ctx, "coding")
	assert.Error(t, err, "duplicate skill names are rejected")

	err = svc.AddSkill(ctx, "")
	assert.Error(t, err)
}
