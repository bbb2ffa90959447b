package cli

import (
	"github.com/spf13/cobra"

	"github.com/m4tyn0/HAL9001/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Schedules service.ScheduleService
	Projects  service.ProjectService
	Tasks     service.TaskService
	Goals     service.GoalService
	Player    service.PlayerService
	Routines  service.RoutineService

	// ConfigPath is where `setup` writes its config file.
	ConfigPath string
	// TemplatePath is where `setup` writes the schedule template.
	TemplatePath string

	// IsInteractive reports whether stdin is a terminal; interactive
	// commands (setup, board) refuse to run without one.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "hal9001" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "hal9001",
		Short: "Gamified daily planner",
	}

	root.AddCommand(
		newScheduleCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newGoalCmd(app),
		newPlayerCmd(app),
		newRoutineCmd(app),
		newSetupCmd(app),
	)

	return root
}
