package update

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/agenda/internal/model"
	"github.com/sandeepkv93/agenda/internal/navigation"
	"github.com/sandeepkv93/agenda/internal/storage"
)

type Screen string

const (
	ScreenCalendar Screen = "Calendar"
	ScreenTasks    Screen = "Tasks"
	ScreenSummary  Screen = "Summary"
)

type PromptKind string

const (
	PromptNone   PromptKind = ""
	PromptAdd    PromptKind = "add"
	PromptDelete PromptKind = "delete"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type KeyMap struct {
	List    string
	Back    string
	Add     string
	Delete  string
	Today   string
	Palette string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model is the session controller. It owns the selection state and the task
// store and is driven one key at a time by bubbletea.
type Model struct {
	Nav         navigation.State
	Screen      Screen
	Prompt      PromptKind
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        KeyMap
	Quitting    bool
	// Err is set when a persistence failure ended the session.
	Err error

	store           *storage.TaskStore
	logger          *log.Logger
	now             func() time.Time
	monthStage      bool
	markdownSummary bool
	width           int

	taskInput    textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

func NewModel(store *storage.TaskStore, cfg RuntimeConfig, logger *log.Logger) Model {
	return NewModelWithClock(store, cfg, logger, time.Now)
}

func NewModelWithClock(store *storage.TaskStore, cfg RuntimeConfig, logger *log.Logger, now func() time.Time) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if now == nil {
		now = time.Now
	}
	m := Model{
		Screen: ScreenCalendar,
		Keys: KeyMap{
			List:    "L",
			Back:    "b",
			Add:     "a",
			Delete:  "d",
			Today:   "t",
			Palette: ":",
			Help:    "?",
			Quit:    "q",
		},
		store:           store,
		logger:          logger,
		now:             now,
		monthStage:      cfg.StartMode != StartModeToday,
		markdownSummary: cfg.SummaryStyle == SummaryStyleMarkdown,
	}
	today := m.today()
	if m.monthStage {
		m.Nav = navigation.NewMonthSelect(today.Year, today.Month-1)
	} else {
		m.Nav = navigation.NewDaySelect(today.Year, today.Month, today.Day)
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.taskInput = textinput.New()
	m.taskInput.CharLimit = 256
	m.taskInput.Width = 60

	m.commandInput = textinput.New()
	m.commandInput.Prompt = ":"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

func (m Model) today() model.DateKey {
	return model.DateKeyFromTime(m.now())
}

func (m Model) Store() *storage.TaskStore {
	return m.store
}
