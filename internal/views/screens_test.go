package views

import (
	"strings"
	"testing"
)

func TestRenderMonthSelectListsAllMonths(t *testing.T) {
	out := RenderMonthSelect(MonthSelectData{Year: 2025, Selected: 10})
	if !strings.Contains(out, "Select Month (2025)") {
		t.Fatalf("expected header in output: %q", out)
	}
	for _, name := range []string{"January", "April", "May", "August", "September", "December"} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output: %q", name, out)
		}
	}
}

func TestRenderDaySelectShowsGrid(t *testing.T) {
	out := RenderDaySelect(DaySelectData{Year: 2025, Month: 4, Selected: 15, TaskCounts: map[int]int{20: 2}})
	if !strings.Contains(out, "April 2025") {
		t.Fatalf("expected month header: %q", out)
	}
	if !strings.Contains(out, "Mon") || !strings.Contains(out, "Sun") {
		t.Fatalf("expected weekday headers: %q", out)
	}
	if !strings.Contains(out, "30") || strings.Contains(out, "31") {
		t.Fatalf("expected 30-day grid: %q", out)
	}
	if !strings.Contains(out, "20*") || strings.Contains(out, "15*") {
		t.Fatalf("expected task marker for day 20: %q", out)
	}
}

func TestRenderTaskListNumbersFromOne(t *testing.T) {
	out := RenderTaskList(TaskListData{Year: 2025, Month: 3, Day: 5, Tasks: []string{"rent", "gym"}})
	if !strings.Contains(out, "Tasks for 05/03/2025:") {
		t.Fatalf("expected date header: %q", out)
	}
	if !strings.Contains(out, "1. rent") || !strings.Contains(out, "2. gym") {
		t.Fatalf("expected numbered tasks: %q", out)
	}

	empty := RenderTaskList(TaskListData{Year: 2025, Month: 3, Day: 5, PromptView: "Enter new task: "})
	if !strings.Contains(empty, "(no tasks)") || !strings.Contains(empty, "Enter new task:") {
		t.Fatalf("expected empty marker and prompt: %q", empty)
	}
}

func TestSummaryLines(t *testing.T) {
	lines := SummaryLines([]SummaryRow{
		{Day: 5, Tasks: []string{"rent", "gym"}},
		{Day: 20, Tasks: []string{"dentist"}},
	})
	if len(lines) != 2 || lines[0] != "05 - rent - gym" || lines[1] != "20 - dentist" {
		t.Fatalf("unexpected summary lines: %#v", lines)
	}
}

func TestRenderMonthSummaryPlain(t *testing.T) {
	out := RenderMonthSummary(MonthSummaryData{Year: 2025, Month: 3})
	if !strings.Contains(out, "Tasks for March 2025:") || !strings.Contains(out, "No tasks for this month.") {
		t.Fatalf("unexpected empty summary: %q", out)
	}
	if !strings.Contains(out, "Press any key to go back.") {
		t.Fatalf("expected dismiss hint: %q", out)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(MonthSummaryData{Year: 2025, Month: 3, Rows: []SummaryRow{{Day: 5, Tasks: []string{"rent"}}}})
	if !strings.Contains(md, "## Tasks for March 2025") || !strings.Contains(md, "- **05** rent") {
		t.Fatalf("unexpected markdown: %q", md)
	}
	if RenderMarkdown("  ", 40) != "" {
		t.Fatal("expected empty markdown to render empty")
	}
}

func TestRenderMarkdownWrapsToWidth(t *testing.T) {
	long := strings.Repeat("errand ", 20)
	md := SummaryMarkdown(MonthSummaryData{Year: 2025, Month: 3, Rows: []SummaryRow{{Day: 5, Tasks: []string{long}}}})
	narrow := strings.Count(RenderMarkdown(md, 30), "\n")
	wide := strings.Count(RenderMarkdown(md, 200), "\n")
	if narrow <= wide {
		t.Fatalf("expected narrow render to wrap onto more lines: narrow=%d wide=%d", narrow, wide)
	}
}
