package calendar

import "time"

// NoDay marks a MonthGrid cell that falls outside the month.
const NoDay = 0

// MonthGrid holds one row per week, Monday first.
type MonthGrid [][7]int

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	default:
		return 0
	}
}

func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

func ClampDay(year, month, day int) int {
	n := DaysInMonth(year, month)
	if day < 1 {
		return 1
	}
	if day > n {
		return n
	}
	return day
}

func Weekday(year, month, day int) time.Weekday {
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC).Weekday()
}

// mondayOffset maps a weekday to its column in a Monday-first week.
func mondayOffset(w time.Weekday) int {
	return (int(w) + 6) % 7
}

func BuildMonthGrid(year, month int) MonthGrid {
	n := DaysInMonth(year, month)
	if n == 0 {
		return MonthGrid{}
	}
	grid := make(MonthGrid, 0, 6)
	var week [7]int
	col := mondayOffset(Weekday(year, month, 1))
	for day := 1; day <= n; day++ {
		week[col] = day
		col++
		if col == 7 {
			grid = append(grid, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		grid = append(grid, week)
	}
	return grid
}

// Position returns the week row and weekday column holding day.
func (g MonthGrid) Position(day int) (row, col int, ok bool) {
	for r, week := range g {
		for c, d := range week {
			if d == day && d != NoDay {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
