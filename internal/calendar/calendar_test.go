package calendar

import (
	"testing"
	"time"
)

func TestDaysInMonthLeapRules(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2000, 2, 29},
		{1900, 2, 28},
		{2025, 4, 30},
		{2025, 12, 31},
		{2025, 13, 0},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Fatalf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestDaysInMonthMatchesTimePackage(t *testing.T) {
	for year := 1890; year <= 2110; year++ {
		for month := 1; month <= 12; month++ {
			last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if got := DaysInMonth(year, month); got != last {
				t.Fatalf("DaysInMonth(%d, %d) = %d, want %d", year, month, got, last)
			}
		}
	}
}

func TestMonthGridCoversEveryDayOnce(t *testing.T) {
	for year := 1999; year <= 2030; year++ {
		for month := 1; month <= 12; month++ {
			grid := BuildMonthGrid(year, month)
			seen := make(map[int]int)
			for _, week := range grid {
				for _, day := range week {
					if day != NoDay {
						seen[day]++
					}
				}
			}
			n := DaysInMonth(year, month)
			if len(seen) != n {
				t.Fatalf("%d-%02d: grid has %d days, want %d", year, month, len(seen), n)
			}
			for day := 1; day <= n; day++ {
				if seen[day] != 1 {
					t.Fatalf("%d-%02d: day %d appears %d times", year, month, day, seen[day])
				}
			}
		}
	}
}

func TestMonthGridIsMondayFirst(t *testing.T) {
	// April 2025 starts on a Tuesday and ends on a Wednesday.
	grid := BuildMonthGrid(2025, 4)
	if len(grid) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(grid))
	}
	if grid[0][0] != NoDay || grid[0][1] != 1 {
		t.Fatalf("unexpected first week: %v", grid[0])
	}
	if grid[4][2] != 30 || grid[4][3] != NoDay {
		t.Fatalf("unexpected last week: %v", grid[4])
	}

	row, col, ok := grid.Position(14)
	if !ok || row != 2 || col != 0 {
		t.Fatalf("expected day 14 at (2,0), got (%d,%d,%v)", row, col, ok)
	}
}

func TestMonthGridFebruaryStartingMonday(t *testing.T) {
	grid := BuildMonthGrid(2021, 2)
	if len(grid) != 4 {
		t.Fatalf("expected exact 4-week grid, got %d", len(grid))
	}
	if grid[0][0] != 1 || grid[3][6] != 28 {
		t.Fatalf("unexpected grid: %v", grid)
	}
}

func TestMonthName(t *testing.T) {
	if MonthName(1) != "January" || MonthName(11) != "November" {
		t.Fatalf("unexpected month names: %q %q", MonthName(1), MonthName(11))
	}
	if MonthName(0) != "" || MonthName(13) != "" {
		t.Fatal("expected empty name for out-of-range months")
	}
}

func TestClampDay(t *testing.T) {
	if got := ClampDay(2025, 2, 31); got != 28 {
		t.Fatalf("expected 28, got %d", got)
	}
	if got := ClampDay(2024, 2, 31); got != 29 {
		t.Fatalf("expected 29, got %d", got)
	}
	if got := ClampDay(2025, 4, -3); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := ClampDay(2025, 4, 15); got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}
}
