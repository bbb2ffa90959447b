// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of starting a tea.Program, the driver feeds messages straight
// into Update and runs every returned Cmd inline, so a test sees the
// model's state after each keystroke without goroutines or timing.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrain caps recursive Cmd draining so a model that keeps emitting
// commands cannot hang a test.
const maxDrain = 100

// cmdTimeout separates ordinary Cmds, which return within microseconds,
// from cursor blink Cmds that park on a timer channel for half a second.
const cmdTimeout = 10 * time.Millisecond

// Driver holds the model under test and the quit flag.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quit is set once tea.QuitMsg comes out of a drained Cmd. The
	// real runtime intercepts that message before the model sees it,
	// so the driver records it here instead.
	Quit bool
}

// New wraps a model and runs its Init command.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	d.drain(model.Init(), 0)
	return d
}

// Send pushes a message through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quit {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// Press sends a single character key.
func (d *Driver) Press(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrain {
		d.T.Logf("teatest: drain depth limit (%d) reached", maxDrain)
		return
	}

	msg := runCmd(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
		return
	}

	if _, ok := msg.(tea.QuitMsg); ok {
		d.Quit = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

// runCmd executes a Cmd, abandoning it if it does not return promptly.
// Cursor blink Cmds block on a timer and would otherwise stall the test.
func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlink filters bubbles/cursor blink messages, whose types are
// unexported and can chain into further blocking Cmds.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
