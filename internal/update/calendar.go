package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/agenda/internal/navigation"
	"github.com/sandeepkv93/agenda/internal/views"
)

func (m Model) navKey(msg tea.KeyMsg) navigation.Key {
	switch msg.String() {
	case "up", "k":
		return navigation.KeyUp
	case "down", "j":
		return navigation.KeyDown
	case "left", "h":
		return navigation.KeyLeft
	case "right", "l":
		return navigation.KeyRight
	case "enter":
		return navigation.KeyConfirm
	case m.Keys.Quit:
		return navigation.KeyQuit
	case m.Keys.List:
		return navigation.KeyList
	default:
		return navigation.KeyNone
	}
}

func (m Model) handleCalendarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Palette:
		m.openPalette()
		return m, nil
	case m.Keys.Today:
		m.gotoToday()
		return m, nil
	case "[":
		m.Nav.ShiftMonth(-1)
		return m, nil
	case "]":
		m.Nav.ShiftMonth(1)
		return m, nil
	}

	k := m.navKey(msg)
	if k == navigation.KeyNone {
		return m, nil
	}
	switch m.Nav.Apply(k) {
	case navigation.EffectQuit:
		m.Quitting = true
		return m, tea.Quit
	case navigation.EffectExitToMonths:
		if !m.monthStage {
			m.Quitting = true
			return m, tea.Quit
		}
		m.Status = StatusBar{}
	case navigation.EffectOpenDay:
		m.Screen = ScreenTasks
		m.Prompt = PromptNone
	case navigation.EffectShowMonthSummary:
		m.Screen = ScreenSummary
	}
	return m, nil
}

func (m *Model) gotoToday() {
	m.Nav.Goto(m.today())
	m.Status = StatusBar{Text: fmt.Sprintf("jumped to %s", m.Nav.Selected())}
}

func (m Model) renderCalendarScreen() (string, string) {
	if m.Nav.Mode == navigation.ModeMonthSelect {
		body := views.RenderMonthSelect(views.MonthSelectData{Year: m.Nav.Year, Selected: m.Nav.MonthIndex})
		return body, "Use arrow keys to select a month, Enter to confirm, 'q' to quit."
	}
	today := m.today()
	todayDay := 0
	if today.InMonth(m.Nav.Year, m.Nav.Month) {
		todayDay = today.Day
	}
	body := views.RenderDaySelect(views.DaySelectData{
		Year:       m.Nav.Year,
		Month:      m.Nav.Month,
		Selected:   m.Nav.Day,
		Today:      todayDay,
		TaskCounts: m.store.CountsForMonth(m.Nav.Year, m.Nav.Month),
	})
	quit := "'q' to go back"
	if !m.monthStage {
		quit = "'q' to quit"
	}
	return body, fmt.Sprintf("Use arrow keys to navigate, Enter to select a day, %s, 'L' to list tasks.", quit)
}

func (m Model) renderSummaryScreen() string {
	rows := m.store.TasksInMonth(m.Nav.Year, m.Nav.Month)
	data := views.MonthSummaryData{Year: m.Nav.Year, Month: m.Nav.Month, Markdown: m.markdownSummary}
	if m.width > 0 {
		// Leave room for the panel border and padding.
		data.Width = m.width - 4
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, views.SummaryRow{Day: row.Day, Tasks: row.Tasks})
	}
	return views.RenderMonthSummary(data)
}
