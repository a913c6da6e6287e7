package navigation

import (
	"github.com/sandeepkv93/agenda/internal/calendar"
	"github.com/sandeepkv93/agenda/internal/model"
)

type Mode string

const (
	ModeMonthSelect Mode = "month-select"
	ModeDaySelect   Mode = "day-select"
)

type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
	KeyQuit
	KeyList
)

// Effect tells the caller what the transition asks of it beyond the cursor move.
type Effect int

const (
	EffectNone Effect = iota
	EffectOpenDay
	EffectShowMonthSummary
	EffectExitToMonths
	EffectQuit
)

const (
	monthColumns = 4
	monthCount   = 12
)

// State is the selection cursor. MonthIndex is meaningful in ModeMonthSelect,
// Month and Day in ModeDaySelect. Year is shared by both.
type State struct {
	Mode       Mode
	Year       int
	MonthIndex int
	Month      int
	Day        int
}

func NewMonthSelect(year, index int) State {
	if index < 0 {
		index = 0
	}
	if index >= monthCount {
		index = monthCount - 1
	}
	return State{Mode: ModeMonthSelect, Year: year, MonthIndex: index, Month: index + 1, Day: 1}
}

func NewDaySelect(year, month, day int) State {
	if month < 1 {
		month = 1
	}
	if month > monthCount {
		month = monthCount
	}
	return State{
		Mode:       ModeDaySelect,
		Year:       year,
		MonthIndex: month - 1,
		Month:      month,
		Day:        calendar.ClampDay(year, month, day),
	}
}

func (s State) Selected() model.DateKey {
	return model.DateKey{Year: s.Year, Month: s.Month, Day: s.Day}
}

func (s State) DaysInMonth() int {
	return calendar.DaysInMonth(s.Year, s.Month)
}

func (s *State) Apply(k Key) Effect {
	switch s.Mode {
	case ModeMonthSelect:
		return s.applyMonth(k)
	case ModeDaySelect:
		return s.applyDay(k)
	default:
		return EffectNone
	}
}

func (s *State) applyMonth(k Key) Effect {
	switch k {
	case KeyDown:
		if s.MonthIndex < monthCount-monthColumns {
			s.MonthIndex += monthColumns
		}
	case KeyUp:
		if s.MonthIndex >= monthColumns {
			s.MonthIndex -= monthColumns
		}
	case KeyRight:
		if s.MonthIndex%monthColumns < monthColumns-1 {
			s.MonthIndex++
		}
	case KeyLeft:
		if s.MonthIndex%monthColumns > 0 {
			s.MonthIndex--
		}
	case KeyConfirm:
		*s = NewDaySelect(s.Year, s.MonthIndex+1, 1)
		return EffectNone
	case KeyQuit:
		return EffectQuit
	}
	return EffectNone
}

func (s *State) applyDay(k Key) Effect {
	n := s.DaysInMonth()
	switch k {
	case KeyRight:
		if s.Day < n {
			s.Day++
		}
	case KeyLeft:
		if s.Day > 1 {
			s.Day--
		}
	case KeyUp:
		s.Day = max(1, s.Day-7)
	case KeyDown:
		s.Day = min(n, s.Day+7)
	case KeyConfirm:
		return EffectOpenDay
	case KeyList:
		return EffectShowMonthSummary
	case KeyQuit:
		*s = NewMonthSelect(s.Year, s.Month-1)
		return EffectExitToMonths
	}
	return EffectNone
}

// Goto selects key in day-select mode.
func (s *State) Goto(key model.DateKey) {
	*s = NewDaySelect(key.Year, key.Month, key.Day)
}

// ShiftMonth moves day-select mode by delta months, keeping the day where the
// target month allows it.
func (s *State) ShiftMonth(delta int) {
	if s.Mode != ModeDaySelect {
		return
	}
	total := s.Year*monthCount + (s.Month - 1) + delta
	year := total / monthCount
	month := total%monthCount + 1
	if year < 1 || year > 9999 {
		return
	}
	*s = NewDaySelect(year, month, s.Day)
}
