package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/agenda/internal/calendar"
	"github.com/sandeepkv93/agenda/internal/navigation"
	"github.com/sandeepkv93/agenda/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("agenda")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.helpModel.Width = typed.Width
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		switch m.Screen {
		case ScreenSummary:
			m.Screen = ScreenCalendar
			return m, nil
		case ScreenTasks:
			return m.handleTaskKey(typed)
		default:
			return m.handleCalendarKey(typed)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	if m.Palette.Active {
		status = m.commandInput.View()
	}

	var body, footer string
	switch m.Screen {
	case ScreenTasks:
		body = m.renderTaskScreen()
		footer = "keys: a add | d delete | b back"
	case ScreenSummary:
		body = m.renderSummaryScreen()
	default:
		body, footer = m.renderCalendarScreen()
	}

	return views.RenderApp(views.AppData{
		Header:     m.header(),
		Body:       body,
		HelpView:   m.renderHelpIfVisible(),
		StatusLine: status,
		IsError:    m.Status.IsError && !m.Palette.Active,
		Footer:     footer,
	})
}

func (m Model) header() string {
	if m.Nav.Mode == navigation.ModeMonthSelect {
		return fmt.Sprintf("agenda | %d | %d tasks", m.Nav.Year, m.store.Len())
	}
	return fmt.Sprintf("agenda | %s %d | selected: %s", calendar.MonthName(m.Nav.Month), m.Nav.Year, m.Nav.Selected())
}

func (m Model) fail(err error) (Model, tea.Cmd) {
	m.Err = err
	m.Quitting = true
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.logger.Error("persist tasks", "path", m.store.Location(), "err", err)
	return m, tea.Quit
}
