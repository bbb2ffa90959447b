package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/m4tyn0/HAL9001/internal/cli/formatter"
	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/template"
)

// halHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func halHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateClock(value string) error {
	if _, err := domain.ParseClock(value); err != nil {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

func newSetupCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Interactive first-run setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("setup requires an interactive terminal")
			}
			if _, err := os.Stat(app.TemplatePath); err == nil && !force {
				return fmt.Errorf("%s already exists; rerun with --force to overwrite", app.TemplatePath)
			}

			playerName := "Player"
			wake := "07:00"
			sleep := "23:00"

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Player name").
						Placeholder("Player").
						Value(&playerName),
					huh.NewInput().
						Title("Wake time").
						Placeholder("07:00").
						Value(&wake).
						Validate(validateClock),
					huh.NewInput().
						Title("Sleep time").
						Placeholder("23:00").
						Value(&sleep).
						Validate(validateClock),
				),
			).WithTheme(halHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			if err := writeStarterTemplate(app.TemplatePath, wake, sleep); err != nil {
				return err
			}
			if err := app.Player.Rename(context.Background(), playerName); err != nil {
				return err
			}

			fmt.Printf("Wrote %s\n", app.TemplatePath)
			fmt.Println("Run `hal9001 schedule generate` to build your first day.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing template")
	return cmd
}

// writeStarterTemplate writes a small working template anchored to the
// chosen wake and sleep times.
func writeStarterTemplate(path, wake, sleep string) error {
	tpl := template.ScheduleTemplate{
		Name:      "default",
		WakeTime:  wake,
		SleepTime: sleep,
		TimeBlocks: []template.TimeBlockConfig{
			{Name: "Morning routine", Start: "+00:00", Duration: "00:30", Type: "routine"},
			{Name: "Deep work", Start: "+02:00", Duration: "02:00", Type: "work"},
			{Name: "Exercise", Start: "+08:00", Duration: "01:00", Type: "exercise"},
			{Name: "Wind down", Start: "-01:00", Duration: "00:45", Type: "rest"},
		},
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	data, err := json.MarshalIndent(tpl, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
