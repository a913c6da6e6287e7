package storage

import (
	"reflect"
	"testing"

	"github.com/sandeepkv93/agenda/internal/model"
)

func key(t *testing.T, raw string) model.DateKey {
	t.Helper()
	k, err := model.ParseDateKey(raw)
	if err != nil {
		t.Fatalf("parse key %q: %v", raw, err)
	}
	return k
}

func TestTasksAddKeepsOrderAndDuplicates(t *testing.T) {
	tasks := Tasks{}
	k := key(t, "2025-03-15")
	tasks.Add(k, "buy milk")
	tasks.Add(k, "call mom")
	tasks.Add(k, "buy milk")

	want := []string{"buy milk", "call mom", "buy milk"}
	if got := tasks.For(k); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tasks: %#v", got)
	}
}

func TestTasksAddIgnoresEmptyText(t *testing.T) {
	tasks := Tasks{}
	k := key(t, "2025-03-15")
	if tasks.Add(k, "") {
		t.Fatal("expected empty text to be ignored")
	}
	if _, ok := tasks[k]; ok {
		t.Fatal("expected no key for empty adds")
	}
}

func TestTasksAddKeepsWhitespaceText(t *testing.T) {
	tasks := Tasks{}
	k := key(t, "2025-03-15")
	if !tasks.Add(k, "   ") {
		t.Fatal("expected whitespace-only text to be stored")
	}
	if got := tasks.For(k); !reflect.DeepEqual(got, []string{"   "}) {
		t.Fatalf("unexpected tasks: %#v", got)
	}
}

func TestTasksRemoveLastDeletesKey(t *testing.T) {
	tasks := Tasks{}
	k := key(t, "2025-03-15")
	tasks.Add(k, "buy milk")
	if got := tasks.For(k); !reflect.DeepEqual(got, []string{"buy milk"}) {
		t.Fatalf("unexpected tasks: %#v", got)
	}
	if !tasks.Remove(k, 1) {
		t.Fatal("expected removal")
	}
	if _, ok := tasks[k]; ok {
		t.Fatal("expected key deleted after removing last task")
	}
	if got := tasks.For(k); len(got) != 0 {
		t.Fatalf("expected empty tasks, got %#v", got)
	}
}

func TestTasksRemoveMiddle(t *testing.T) {
	k := key(t, "2025-03-15")
	tasks := Tasks{k: {"a", "b", "c"}}
	if !tasks.Remove(k, 2) {
		t.Fatal("expected removal")
	}
	if !reflect.DeepEqual(tasks[k], []string{"a", "c"}) {
		t.Fatalf("unexpected tasks: %#v", tasks[k])
	}
}

func TestTasksRemoveOutOfRangeIsNoop(t *testing.T) {
	k := key(t, "2025-03-15")
	tasks := Tasks{k: {"a", "b"}}
	before := tasks.Clone()
	for _, idx := range []int{-1, 0, 3, 99} {
		if tasks.Remove(k, idx) {
			t.Fatalf("expected no-op for index %d", idx)
		}
	}
	if tasks.Remove(key(t, "2025-03-16"), 1) {
		t.Fatal("expected no-op for missing key")
	}
	if !reflect.DeepEqual(tasks, before) {
		t.Fatalf("mapping changed: %#v", tasks)
	}
}

func TestTasksForReturnsCopy(t *testing.T) {
	k := key(t, "2025-03-15")
	tasks := Tasks{k: {"a"}}
	got := tasks.For(k)
	got[0] = "mutated"
	if tasks[k][0] != "a" {
		t.Fatal("For must not expose internal slice")
	}
}

func TestTasksInMonthAscending(t *testing.T) {
	tasks := Tasks{
		key(t, "2025-03-20"): {"dentist"},
		key(t, "2025-03-05"): {"rent", "gym"},
		key(t, "2025-04-05"): {"other month"},
		key(t, "2024-03-05"): {"other year"},
	}
	got := tasks.InMonth(2025, 3)
	want := []DayTasks{
		{Day: 5, Tasks: []string{"rent", "gym"}},
		{Day: 20, Tasks: []string{"dentist"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected month tasks: %#v", got)
	}
	if empty := tasks.InMonth(2025, 6); len(empty) != 0 {
		t.Fatalf("expected empty month, got %#v", empty)
	}
}

func TestTasksSortedKeys(t *testing.T) {
	tasks := Tasks{
		key(t, "2025-03-20"): {"x"},
		key(t, "2024-12-31"): {"y"},
		key(t, "2025-01-02"): {"z"},
	}
	keys := tasks.SortedKeys()
	got := []string{keys[0].String(), keys[1].String(), keys[2].String()}
	want := []string{"2024-12-31", "2025-01-02", "2025-03-20"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected order: %v", got)
	}
	if tasks.Count() != 3 {
		t.Fatalf("unexpected count: %d", tasks.Count())
	}
}
