package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m4tyn0/HAL9001/internal/cli/formatter"
	"github.com/m4tyn0/HAL9001/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage project tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var projectID, description string
	var priority, estimatedMin, xpReward int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a task to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Task{
				ProjectID:    projectID,
				Name:         args[0],
				Description:  description,
				Priority:     priority,
				EstimatedMin: estimatedMin,
				XPReward:     xpReward,
			}
			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}
			fmt.Printf("Added task %s (%s)\n", t.Name, t.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().IntVar(&priority, "priority", 1, "Priority (higher is more urgent)")
	cmd.Flags().IntVar(&estimatedMin, "estimate", 0, "Estimated minutes")
	cmd.Flags().IntVar(&xpReward, "xp", 20, "XP awarded on completion")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.ListByProject(context.Background(), projectID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			headers := []string{"ID", "TASK", "STATUS", "EST", "XP"}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					t.Name,
					formatter.TaskStatusPill(t.Status),
					formatter.FormatMinutes(t.EstimatedMin),
					fmt.Sprintf("%d", t.XPReward),
				})
			}

			fmt.Print(formatter.RenderBox("Tasks", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project ID")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task done and collect its XP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Tasks.Complete(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Task done %s\n", formatter.FormatXP(res.XPAwarded))
			if res.LeveledUp {
				fmt.Printf("★ Level up! You reached level %d\n", res.Level)
			}
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", args[0])
			return nil
		},
	}
}
