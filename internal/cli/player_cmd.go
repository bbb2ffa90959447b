package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m4tyn0/HAL9001/internal/cli/formatter"
)

func newPlayerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player profile and XP history",
	}

	cmd.AddCommand(
		newPlayerShowCmd(app),
		newPlayerXPCmd(app),
		newPlayerRenameCmd(app),
		newPlayerSkillCmd(app),
	)

	return cmd
}

func newPlayerShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the player profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Player.Profile(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderProfile(profile))
			return nil
		},
	}
}

func newPlayerXPCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "xp",
		Short: "Show recent XP history",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Player.RecentXP(context.Background(), days)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderBox("XP Log", formatter.RenderXPLog(entries)))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to show")
	return cmd
}

func newPlayerSkillCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Manage skill tracks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Add a new skill track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Player.AddSkill(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Added skill %s\n", args[0])
			return nil
		},
	})

	return cmd
}

func newPlayerRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename NAME",
		Short: "Rename the player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Player.Rename(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Renamed player to %s\n", args[0])
			return nil
		},
	}
}
