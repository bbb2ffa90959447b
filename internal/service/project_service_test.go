package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/repository"
	"github.com/m4tyn0/HAL9001/internal/testutil"
)

func TestProjectService_CreateAssignsIDAndDefaults(t *testing.T) {
	svc := NewProjectService(repository.NewSQLiteProjectRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	proj := &domain.Project{Name: "Thesis"}
	require.NoError(t, svc.Create(ctx, proj))
	assert.NotEmpty(t, proj.ID)
	assert.Equal(t, domain.ProjectNotStarted, proj.Status)

	fetched, err := svc.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Thesis", fetched.Name)
}

func TestProjectService_Create_Invalid(t *testing.T) {
	svc := NewProjectService(repository.NewSQLiteProjectRepo(testutil.NewTestDB(t)))

	err := svc.Create(context.Background(), &domain.Project{})
	assert.Error(t, err)
}

func TestProjectService_UpdateBumpsTimestamp(t *testing.T) {
	svc := NewProjectService(repository.NewSQLiteProjectRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	proj := &domain.Project{Name: "Thesis"}
	require.NoError(t, svc.Create(ctx, proj))
	created := proj.UpdatedAt

	proj.Status = domain.ProjectInProgress
	require.NoError(t, svc.Update(ctx, proj))
	assert.False(t, proj.UpdatedAt.Before(created))

	fetched, err := svc.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectInProgress, fetched.Status)
}
