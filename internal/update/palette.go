package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/agenda/internal/commands"
	"github.com/sandeepkv93/agenda/internal/navigation"
)

var errNeedsDay = &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "select a day first"}

func (m *Model) openPalette() {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	// A failed write inside a handler ends the session.
	var fatal error
	res, err := commands.Execute(cmd, commands.Handlers{
		Goto: func(g commands.GotoArgs) (commands.Result, error) {
			m.Nav.Goto(g.Date)
			m.Screen = ScreenCalendar
			return commands.Result{Message: fmt.Sprintf("jumped to %s", g.Date)}, nil
		},
		Today: func() (commands.Result, error) {
			m.gotoToday()
			m.Screen = ScreenCalendar
			return commands.Result{Message: m.Status.Text}, nil
		},
		Add: func(a commands.AddArgs) (commands.Result, error) {
			if m.Nav.Mode != navigation.ModeDaySelect {
				return commands.Result{}, errNeedsDay
			}
			key := m.Nav.Selected()
			if _, err := m.store.AddTask(context.Background(), key, a.Text); err != nil {
				fatal = err
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added task to %s", key)}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			if m.Nav.Mode != navigation.ModeDaySelect {
				return commands.Result{}, errNeedsDay
			}
			key := m.Nav.Selected()
			removed, err := m.store.RemoveTask(context.Background(), key, d.Index)
			if err != nil {
				fatal = err
				return commands.Result{}, err
			}
			if !removed {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task %d on %s", d.Index, key)}
			}
			return commands.Result{Message: fmt.Sprintf("deleted task %d from %s", d.Index, key)}, nil
		},
		List: func() (commands.Result, error) {
			if m.Nav.Mode != navigation.ModeDaySelect {
				return commands.Result{}, errNeedsDay
			}
			m.Screen = ScreenSummary
			return commands.Result{Message: "month summary"}, nil
		},
	})
	if fatal != nil {
		return m.fail(fatal)
	}
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.logger.Debug("palette command", "type", string(cmd.Type), "result", res.Message)
	m.Status = StatusBar{Text: res.Message}
	return m, nil
}
