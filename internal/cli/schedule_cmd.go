package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/m4tyn0/HAL9001/internal/cli/formatter"
)

// parseDateFlag parses a --date value, defaulting to today.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" || value == "today" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	if value == "tomorrow" {
		now := time.Now().AddDate(0, 0, 1)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	d, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD, today or tomorrow", value)
	}
	return d, nil
}

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and track the daily schedule",
	}

	cmd.AddCommand(
		newScheduleGenerateCmd(app),
		newScheduleViewCmd(app),
		newScheduleCompleteCmd(app),
		newScheduleUncompleteCmd(app),
		newScheduleRateCmd(app),
		newScheduleBoardCmd(app),
	)

	return cmd
}

func newScheduleGenerateCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the schedule for a date from the template",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			sched, err := app.Schedules.Generate(context.Background(), date)
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderSchedule(sched))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Date (YYYY-MM-DD, today or tomorrow)")
	return cmd
}

func newScheduleViewCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the schedule for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			sched, err := app.Schedules.Get(context.Background(), date)
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderSchedule(sched))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Date (YYYY-MM-DD, today or tomorrow)")
	return cmd
}

func newScheduleCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete ITEM_ID",
		Short: "Mark a schedule item completed and collect its XP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Schedules.CompleteItem(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderCompletion(
				res.Item.Name, res.XPAwarded, res.TotalXP, res.Level, res.LeveledUp))
			return nil
		},
	}
}

func newScheduleUncompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "uncomplete ITEM_ID",
		Short: "Revert a completed schedule item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedules.UncompleteItem(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Reverted item %s\n", args[0])
			return nil
		},
	}
}

func newScheduleRateCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Show the completion rate for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			rate, err := app.Schedules.CompletionRate(context.Background(), date)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n", formatter.HumanDate(date), formatter.RenderProgress(rate, 20))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Date (YYYY-MM-DD, today or tomorrow)")
	return cmd
}

func newScheduleBoardCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Interactive schedule board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("board requires an interactive terminal")
			}

			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			sched, err := app.Schedules.Get(context.Background(), date)
			if err != nil {
				return err
			}

			model := newBoardModel(app, sched)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Date (YYYY-MM-DD, today or tomorrow)")
	return cmd
}
