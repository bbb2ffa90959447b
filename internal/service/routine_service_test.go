package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4tyn0/HAL9001/internal/repository"
)

func TestRoutineService_ListAndGet(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "morning.md"), []byte("# Morning\n- stretch\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "evening.md"), []byte("# Evening\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	svc := NewRoutineService(dir)
	ctx := context.Background()

	routines, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, routines, 2)
	assert.Equal(t, "evening", routines[0].Name)
	assert.Equal(t, "morning", routines[1].Name)

	content, err := svc.Get(ctx, "morning")
	require.NoError(t, err)
	assert.Contains(t, content, "stretch")
}

func TestRoutineService_MissingDirIsEmpty(t *testing.T) {
	svc := NewRoutineService(filepath.Join(t.TempDir(), "nope"))

	routines, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, routines)
}

func TestRoutineService_Get_NotFound(t *testing.T) {
	svc := NewRoutineService(t.TempDir())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRoutineService_Get_RejectsPathSeparators(t *testing.T) {
	svc := NewRoutineService(t.TempDir())

	_, err := svc.Get(context.Background(), "../secret")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
