package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m4tyn0/HAL9001/internal/repository"
)

type routineService struct {
	dir string
}

// NewRoutineService reads routines from markdown files in dir. Routines
// are reference material; the schedule engine links to them by name but
// never writes them.
func NewRoutineService(dir string) RoutineService {
	return &routineService{dir: dir}
}

func (s *routineService) List(_ context.Context) ([]Routine, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading routines dir: %w", err)
	}

	var routines []Routine
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		routines = append(routines, Routine{
			Name: strings.TrimSuffix(e.Name(), ".md"),
			Path: filepath.Join(s.dir, e.Name()),
		})
	}
	sort.Slice(routines, func(i, j int) bool { return routines[i].Name < routines[j].Name })
	return routines, nil
}

func (s *routineService) Get(_ context.Context, name string) (string, error) {
	// Names come from user input; keep them inside the routines dir.
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("routine %s: %w", name, repository.ErrNotFound)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("routine %s: %w", name, repository.ErrNotFound)
		}
		return "", fmt.Errorf("reading routine: %w", err)
	}
	return string(data), nil
}
