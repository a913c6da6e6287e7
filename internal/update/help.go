package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/agenda/internal/navigation"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := m.helpBindings()
	m.helpModel.ShowAll = true
	return m.helpModel.View(helpKeyMap{
		short: bindings,
		full:  [][]key.Binding{bindings},
	})
}

func (m Model) screenBindings() []KeyBinding {
	if m.Screen == ScreenTasks {
		return []KeyBinding{
			{Key: m.Keys.Add, Action: "add task"},
			{Key: m.Keys.Delete, Action: "delete task by number"},
			{Key: m.Keys.Back, Action: "back to calendar"},
			{Key: "esc", Action: "cancel prompt"},
		}
	}
	if m.Nav.Mode == navigation.ModeMonthSelect {
		return []KeyBinding{
			{Key: "←↑↓→/hjkl", Action: "move month cursor"},
			{Key: "enter", Action: "open month"},
			{Key: m.Keys.Today, Action: "jump to today"},
			{Key: m.Keys.Palette, Action: "command palette"},
			{Key: m.Keys.Quit, Action: "quit"},
		}
	}
	quit := "back to months"
	if !m.monthStage {
		quit = "quit"
	}
	return []KeyBinding{
		{Key: "←→/hl", Action: "previous/next day"},
		{Key: "↑↓/kj", Action: "previous/next week"},
		{Key: "[/]", Action: "previous/next month"},
		{Key: "enter", Action: "edit tasks for day"},
		{Key: m.Keys.List, Action: "list month tasks"},
		{Key: m.Keys.Today, Action: "jump to today"},
		{Key: m.Keys.Palette, Action: "command palette"},
		{Key: m.Keys.Quit, Action: quit},
	}
}

func (m Model) helpBindings() []key.Binding {
	bindings := m.screenBindings()
	bindings = append(bindings, KeyBinding{Key: m.Keys.Help, Action: "toggle help"})
	out := make([]key.Binding, 0, len(bindings))
	for _, kb := range bindings {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
