package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/m4tyn0/HAL9001/internal/cli/formatter"
	"github.com/m4tyn0/HAL9001/internal/domain"
	"github.com/m4tyn0/HAL9001/internal/schedule"
)

type boardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

var boardKeys = boardKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// toggleResultMsg carries the refreshed schedule after a completion
// toggle, or the error that prevented it.
type toggleResultMsg struct {
	sched  *domain.DaySchedule
	status string
	err    error
}

// boardModel is the bubbletea model for the interactive schedule board.
type boardModel struct {
	app    *App
	sched  *domain.DaySchedule
	cursor int
	status string
	err    error
}

func newBoardModel(app *App, sched *domain.DaySchedule) boardModel {
	return boardModel{app: app, sched: sched}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case toggleResultMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.sched = msg.sched
		m.status = msg.status
		m.err = nil
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, boardKeys.Down):
			if m.cursor < len(m.sched.Items)-1 {
				m.cursor++
			}
		case key.Matches(msg, boardKeys.Toggle):
			if len(m.sched.Items) > 0 {
				return m, m.toggleCmd(m.sched.Items[m.cursor])
			}
		}
	}
	return m, nil
}

// toggleCmd flips the completion state of the item under the cursor and
// reloads the schedule so stored XP values stay authoritative.
func (m boardModel) toggleCmd(item domain.ScheduleItem) tea.Cmd {
	app := m.app
	date := m.sched.Date
	return func() tea.Msg {
		ctx := context.Background()

		var status string
		if item.Completed {
			if err := app.Schedules.UncompleteItem(ctx, item.ID); err != nil {
				return toggleResultMsg{err: err}
			}
			status = fmt.Sprintf("Reverted %s", item.Name)
		} else {
			res, err := app.Schedules.CompleteItem(ctx, item.ID)
			if err != nil {
				return toggleResultMsg{err: err}
			}
			status = fmt.Sprintf("Completed %s %s", item.Name, formatter.FormatXP(res.XPAwarded))
			if res.LeveledUp {
				status += fmt.Sprintf("  ★ level %d!", res.Level)
			}
		}

		sched, err := app.Schedules.Get(ctx, date)
		if err != nil {
			return toggleResultMsg{err: err}
		}
		return toggleResultMsg{sched: sched, status: status}
	}
}

func (m boardModel) View() string {
	var out string

	out += formatter.Header(m.sched.Date.Format("Monday, Jan 2 2006")) + "\n\n"

	for i := range m.sched.Items {
		it := &m.sched.Items[i]
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
		}
		line := fmt.Sprintf("%s %s  %s %s",
			formatter.CheckMark(it.Completed),
			it.Window(),
			it.Name,
			formatter.ItemTypeBadge(it.Type),
		)
		if it.Completed {
			line += " " + formatter.FormatXP(it.XPGained)
		}
		out += cursor + line + "\n"
	}

	out += "\n" + formatter.RenderProgress(schedule.CompletionRate(m.sched), 20) + "\n"

	if m.err != nil {
		out += formatter.StyleRed.Render("error: "+m.err.Error()) + "\n"
	} else if m.status != "" {
		out += formatter.Dim(m.status) + "\n"
	}
	out += formatter.Dim("↑/↓ move · space toggle · q quit") + "\n"
	return out
}
