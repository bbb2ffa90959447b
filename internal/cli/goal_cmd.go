package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m4tyn0/HAL9001/internal/cli/formatter"
	"github.com/m4tyn0/HAL9001/internal/domain"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage long-term goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalStatusCmd("achieve", "Mark a goal achieved", func(ctx context.Context, id string) error {
			return app.Goals.Achieve(ctx, id)
		}),
		newGoalStatusCmd("abandon", "Abandon a goal", func(ctx context.Context, id string) error {
			return app.Goals.Abandon(ctx, id)
		}),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var end string

	cmd := &cobra.Command{
		Use:   "add DESCRIPTION",
		Short: "Add a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &domain.Goal{Description: args[0]}
			if end != "" {
				d, err := time.ParseInLocation("2006-01-02", end, time.Local)
				if err != nil {
					return fmt.Errorf("invalid end date %q: expected YYYY-MM-DD", end)
				}
				g.EndDate = &d
			}

			if err := app.Goals.Create(context.Background(), g); err != nil {
				return err
			}
			fmt.Printf("Added goal: %s\n", g.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&end, "by", "", "Target end date (YYYY-MM-DD)")
	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var statusFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			var status *domain.GoalStatus
			if statusFlag != "" {
				s := domain.GoalStatus(statusFlag)
				status = &s
			}

			goals, err := app.Goals.List(context.Background(), status)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Println("No goals found.")
				return nil
			}

			headers := []string{"ID", "GOAL", "STATUS", "SINCE", "BY"}
			rows := make([][]string, 0, len(goals))
			for _, g := range goals {
				byCell := formatter.Dim("--")
				if g.EndDate != nil {
					byCell = formatter.HumanDate(*g.EndDate)
				}
				rows = append(rows, []string{
					formatter.TruncID(g.ID),
					g.Description,
					formatter.GoalStatusPill(g.Status),
					g.StartDate.Format("2006-01-02"),
					byCell,
				})
			}

			fmt.Print(formatter.RenderBox("Goals", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "Filter by status (in_progress, achieved, abandoned)")
	return cmd
}

func newGoalStatusCmd(verb, short string, apply func(context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apply(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Goal %s: %sd\n", args[0], verb)
			return nil
		},
	}
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Goals.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed goal %s\n", args[0])
			return nil
		},
	}
}
