package storage

import (
	"sort"

	"github.com/sandeepkv93/agenda/internal/calendar"
	"github.com/sandeepkv93/agenda/internal/model"
)

// Tasks maps a date to its tasks in insertion order. A present key always
// holds at least one task.
type Tasks map[model.DateKey][]string

type DayTasks struct {
	Day   int
	Tasks []string
}

// Add appends text to key. Only the empty string is ignored; whitespace is
// stored as typed.
func (t Tasks) Add(key model.DateKey, text string) bool {
	if text == "" {
		return false
	}
	t[key] = append(t[key], text)
	return true
}

// Remove deletes the task at the 1-based index. Out-of-range indexes are a no-op.
func (t Tasks) Remove(key model.DateKey, index int) bool {
	list := t[key]
	pos := index - 1
	if pos < 0 || pos >= len(list) {
		return false
	}
	next := make([]string, 0, len(list)-1)
	next = append(next, list[:pos]...)
	next = append(next, list[pos+1:]...)
	if len(next) == 0 {
		delete(t, key)
		return true
	}
	t[key] = next
	return true
}

func (t Tasks) For(key model.DateKey) []string {
	list := t[key]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func (t Tasks) InMonth(year, month int) []DayTasks {
	out := make([]DayTasks, 0)
	n := calendar.DaysInMonth(year, month)
	for day := 1; day <= n; day++ {
		list := t[model.DateKey{Year: year, Month: month, Day: day}]
		if len(list) == 0 {
			continue
		}
		items := make([]string, len(list))
		copy(items, list)
		out = append(out, DayTasks{Day: day, Tasks: items})
	}
	return out
}

func (t Tasks) Clone() Tasks {
	out := make(Tasks, len(t))
	for k, list := range t {
		if len(list) == 0 {
			continue
		}
		items := make([]string, len(list))
		copy(items, list)
		out[k] = items
	}
	return out
}

// SortedKeys returns the keys in chronological order.
func (t Tasks) SortedKeys() []model.DateKey {
	keys := make([]model.DateKey, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}

func (t Tasks) Count() int {
	total := 0
	for _, list := range t {
		total += len(list)
	}
	return total
}
