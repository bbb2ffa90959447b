package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m4tyn0/HAL9001/internal/cli/formatter"
	"github.com/m4tyn0/HAL9001/internal/domain"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectViewCmd(app),
		newProjectDoneCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var description, due string
	var priority, xpReward int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				Name:        args[0],
				Description: description,
				Priority:    priority,
				XPReward:    xpReward,
			}
			if due != "" {
				d, err := time.ParseInLocation("2006-01-02", due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid due date %q: expected YYYY-MM-DD", due)
				}
				p.DueDate = &d
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Added project %s (%s)\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&priority, "priority", 1, "Priority (higher is more urgent)")
	cmd.Flags().IntVar(&xpReward, "xp", 50, "XP awarded on completion")
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			headers := []string{"ID", "NAME", "STATUS", "PRIORITY", "DUE", "XP"}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				dueCell := formatter.Dim("--")
				if p.DueDate != nil {
					dueCell = formatter.HumanDate(*p.DueDate)
				}
				rows = append(rows, []string{
					formatter.TruncID(p.ID),
					p.Name,
					formatter.ProjectStatusPill(p.Status),
					fmt.Sprintf("%d", p.Priority),
					dueCell,
					fmt.Sprintf("%d", p.XPReward),
				})
			}

			fmt.Print(formatter.RenderBox("Projects", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed projects")
	return cmd
}

func newProjectViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view ID",
		Short: "Show a project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			p, err := app.Projects.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByProject(ctx, p.ID)
			if err != nil {
				return err
			}

			out := formatter.Header(p.Name) + "\n"
			out += formatter.ProjectStatusPill(p.Status) + "\n"
			if p.Description != "" {
				out += formatter.Dim(p.Description) + "\n"
			}

			if len(tasks) > 0 {
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
				out += "\n" + formatter.RenderTable(headers, rows)
			}

			fmt.Print(out)
			return nil
		},
	}
}

func newProjectDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a project done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			p, err := app.Projects.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			p.Status = domain.ProjectDone
			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Marked project %s done\n", p.Name)
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", args[0])
			return nil
		},
	}
}
