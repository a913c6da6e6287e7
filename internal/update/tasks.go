package update

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/agenda/internal/model"
	"github.com/sandeepkv93/agenda/internal/views"
)

func (m Model) handleTaskKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Prompt != PromptNone {
		return m.handlePromptKey(msg)
	}
	switch msg.String() {
	case m.Keys.Back, m.Keys.Quit, "esc":
		m.Screen = ScreenCalendar
	case m.Keys.Add:
		m.openPrompt(PromptAdd, "Enter new task: ")
	case m.Keys.Delete:
		if len(m.store.TasksFor(m.Nav.Selected())) > 0 {
			m.openPrompt(PromptDelete, "Enter task number to delete: ")
		}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
	}
	return m, nil
}

func (m *Model) openPrompt(kind PromptKind, label string) {
	m.Prompt = kind
	m.taskInput.Prompt = label
	m.taskInput.SetValue("")
	if kind == PromptDelete {
		m.taskInput.CharLimit = 4
	} else {
		m.taskInput.CharLimit = 256
	}
	m.taskInput.Focus()
}

func (m *Model) closePrompt() {
	m.Prompt = PromptNone
	m.taskInput.SetValue("")
	m.taskInput.Blur()
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil
	case "enter":
		kind := m.Prompt
		value := m.taskInput.Value()
		m.closePrompt()
		if kind == PromptAdd {
			return m.addTask(m.Nav.Selected(), value)
		}
		return m.deleteTaskInput(m.Nav.Selected(), value)
	}
	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	return m, cmd
}

func (m Model) addTask(key model.DateKey, text string) (Model, tea.Cmd) {
	added, err := m.store.AddTask(context.Background(), key, text)
	if err != nil {
		return m.fail(err)
	}
	if added {
		m.logger.Debug("task added", "date", key.String(), "count", len(m.store.TasksFor(key)))
		m.Status = StatusBar{Text: fmt.Sprintf("added task to %s", key)}
	}
	return m, nil
}

// deleteTaskInput silently ignores input that is not a valid task number.
func (m Model) deleteTaskInput(key model.DateKey, raw string) (Model, tea.Cmd) {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return m, nil
	}
	return m.deleteTask(key, index)
}

func (m Model) deleteTask(key model.DateKey, index int) (Model, tea.Cmd) {
	removed, err := m.store.RemoveTask(context.Background(), key, index)
	if err != nil {
		return m.fail(err)
	}
	if removed {
		m.logger.Debug("task removed", "date", key.String(), "index", index)
		m.Status = StatusBar{Text: fmt.Sprintf("deleted task %d from %s", index, key)}
	}
	return m, nil
}

func (m Model) renderTaskScreen() string {
	sel := m.Nav.Selected()
	data := views.TaskListData{
		Year:  sel.Year,
		Month: sel.Month,
		Day:   sel.Day,
		Tasks: m.store.TasksFor(sel),
	}
	if m.Prompt != PromptNone {
		data.PromptView = m.taskInput.View()
	}
	return views.RenderTaskList(data)
}
