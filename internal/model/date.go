package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/agenda/internal/calendar"
)

var (
	ErrInvalidDate   = errors.New("model: invalid date")
	ErrMalformedDate = errors.New("model: malformed date key")
)

// DateKey identifies a calendar date. Its string form is YYYY-MM-DD.
type DateKey struct {
	Year  int
	Month int
	Day   int
}

func NewDateKey(year, month, day int) (DateKey, error) {
	k := DateKey{Year: year, Month: month, Day: day}
	if err := k.Validate(); err != nil {
		return DateKey{}, err
	}
	return k, nil
}

func DateKeyFromTime(t time.Time) DateKey {
	return DateKey{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (k DateKey) Validate() error {
	if k.Year < 1 || k.Year > 9999 {
		return fmt.Errorf("%w: year %d", ErrInvalidDate, k.Year)
	}
	if k.Month < 1 || k.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, k.Month)
	}
	if k.Day < 1 || k.Day > calendar.DaysInMonth(k.Year, k.Month) {
		return fmt.Errorf("%w: day %d of %04d-%02d", ErrInvalidDate, k.Day, k.Year, k.Month)
	}
	return nil
}

func (k DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, k.Month, k.Day)
}

// Before orders keys chronologically.
func (k DateKey) Before(other DateKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	if k.Month != other.Month {
		return k.Month < other.Month
	}
	return k.Day < other.Day
}

func (k DateKey) InMonth(year, month int) bool {
	return k.Year == year && k.Month == month
}

// ParseDateKey accepts only the canonical zero-padded form.
func ParseDateKey(raw string) (DateKey, error) {
	parts := strings.Split(raw, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return DateKey{}, fmt.Errorf("%w: %q", ErrMalformedDate, raw)
	}
	nums := [3]int{}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || strings.HasPrefix(p, "+") || strings.HasPrefix(p, "-") {
			return DateKey{}, fmt.Errorf("%w: %q", ErrMalformedDate, raw)
		}
		nums[i] = n
	}
	return NewDateKey(nums[0], nums[1], nums[2])
}
