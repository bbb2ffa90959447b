package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/testutil"
)

func TestPlayerRepo_Get_SeededDefault(t *testing.T) {
	repo := NewSQLitePlayerRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Player", p.Name)
	assert.Equal(t, 0, p.TotalXP)
	assert.Equal(t, 0, p.Level)
	assert.Empty(t, p.Skills)
}

func TestPlayerRepo_UpsertRoundTrip(t *testing.T) {
	repo := NewSQLitePlayerRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := &domain.PlayerProfile{
		Name:    "M4t",
		TotalXP: 450,
		Level:   3,
		Skills: []domain.Skill{
			{Name: "fitness", Level: 2, XP: 180},
			{Name: "writing", Level: 1, XP: 90},
		},
	}
	require.NoError(t, repo.Upsert(ctx, p))

	fetched, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "M4t", fetched.Name)
	assert.Equal(t, 450, fetched.TotalXP)
	assert.Equal(t, 3, fetched.Level)
	require.Len(t, fetched.Skills, 2)
	assert.Equal(t, "fitness", fetched.Skills[0].Name)
	assert.Equal(t, 180, fetched.Skills[0].XP)
}

func TestPlayerRepo_UpsertReplacesSkills(t *testing.T) {
	repo := NewSQLitePlayerRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := &domain.PlayerProfile{
		Name:   "M4t",
		Skills: []domain.Skill{{Name: "fitness", XP: 100}, {Name: "writing", XP: 50}},
	}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &domain.PlayerProfile{
		Name:   "M4t",
		Skills: []domain.Skill{{Name: "fitness", XP: 120}},
	}
	require.NoError(t, repo.Upsert(ctx, second))

	fetched, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, fetched.Skills, 1)
	assert.Equal(t, "fitness", fetched.Skills[0].Name)
	assert.Equal(t, 120, fetched.Skills[0].XP)
}
