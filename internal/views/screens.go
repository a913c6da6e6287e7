package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/agenda/internal/calendar"
)

var weekdayHeaders = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type MonthSelectData struct {
	Year     int
	Selected int
}

type DaySelectData struct {
	Year       int
	Month      int
	Selected   int
	Today      int
	TaskCounts map[int]int
}

type TaskListData struct {
	Year       int
	Month      int
	Day        int
	Tasks      []string
	PromptView string
}

type SummaryRow struct {
	Day   int
	Tasks []string
}

type MonthSummaryData struct {
	Year     int
	Month    int
	Rows     []SummaryRow
	Markdown bool
	// Width is the wrap width for the markdown style; zero picks a default.
	Width int
}

func RenderMonthSelect(data MonthSelectData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("*** Select Month (%d) ***\n\n", data.Year))
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 4)
		for col := 0; col < 4; col++ {
			idx := row*4 + col
			style := monthStyle
			if idx == data.Selected {
				style = monthSelStyle
			}
			cells = append(cells, style.Width(12).Render(calendar.MonthName(idx+1)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderDaySelect(data DaySelectData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("*** %s %d ***\n\n", calendar.MonthName(data.Month), data.Year))
	for _, h := range weekdayHeaders {
		b.WriteString(weekdayStyle.Render(fmt.Sprintf(" %s", h)))
	}
	b.WriteString("\n")
	for _, week := range calendar.BuildMonthGrid(data.Year, data.Month) {
		for _, day := range week {
			b.WriteString(" ")
			if day == calendar.NoDay {
				b.WriteString("   ")
				continue
			}
			cell := fmt.Sprintf("%2d", day)
			marker := " "
			if data.TaskCounts[day] > 0 {
				marker = "*"
			}
			style := dayStyle
			switch {
			case day == data.Selected:
				style = selectedStyle
			case data.TaskCounts[day] > 0:
				style = markedStyle
			}
			if day == data.Today {
				style = style.Inherit(todayStyle)
			}
			b.WriteString(style.Render(cell) + marker)
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderTaskList(data TaskListData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tasks for %02d/%02d/%04d:\n\n", data.Day, data.Month, data.Year))
	if len(data.Tasks) == 0 {
		b.WriteString("(no tasks)\n")
	}
	for i, task := range data.Tasks {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, task))
	}
	b.WriteString("\n")
	b.WriteString(actionStyle.Render("Press 'a' to add a task, 'd' to delete a task, or 'b' to go back."))
	if data.PromptView != "" {
		b.WriteString("\n\n" + data.PromptView)
	}
	return b.String()
}

// SummaryLines formats one line per day: "DD - first - second".
func SummaryLines(rows []SummaryRow) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, fmt.Sprintf("%02d - %s", row.Day, strings.Join(row.Tasks, " - ")))
	}
	return out
}

func SummaryMarkdown(data MonthSummaryData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("## Tasks for %s %d\n\n", calendar.MonthName(data.Month), data.Year))
	if len(data.Rows) == 0 {
		b.WriteString("_No tasks for this month._\n")
		return b.String()
	}
	for _, row := range data.Rows {
		b.WriteString(fmt.Sprintf("- **%02d** %s\n", row.Day, strings.Join(row.Tasks, " · ")))
	}
	return b.String()
}

func RenderMonthSummary(data MonthSummaryData) string {
	var body string
	if data.Markdown {
		body = RenderMarkdown(SummaryMarkdown(data), data.Width)
	} else {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("Tasks for %s %d:\n\n", calendar.MonthName(data.Month), data.Year))
		lines := SummaryLines(data.Rows)
		if len(lines) == 0 {
			b.WriteString("No tasks for this month.")
		} else {
			b.WriteString(strings.Join(lines, "\n"))
		}
		body = b.String()
	}
	return body + "\n\n" + actionStyle.Render("Press any key to go back.")
}
