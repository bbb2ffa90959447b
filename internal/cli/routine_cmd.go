package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m4tyn0/HAL9001/internal/cli/formatter"
)

func newRoutineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Browse routine reference files",
	}

	cmd.AddCommand(
		newRoutineListCmd(app),
		newRoutineShowCmd(app),
	)

	return cmd
}

func newRoutineListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List routines",
		RunE: func(cmd *cobra.Command, args []string) error {
			routines, err := app.Routines.List(context.Background())
			if err != nil {
				return err
			}
			if len(routines) == 0 {
				fmt.Println("No routines found.")
				return nil
			}

			for _, r := range routines {
				fmt.Printf("%s %s\n", formatter.Bold(r.Name), formatter.Dim(r.Path))
			}
			return nil
		},
	}
}

func newRoutineShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := app.Routines.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderBox(args[0], content))
			return nil
		},
	}
}
