package storage

import (
	"context"

	"github.com/sandeepkv93/agenda/internal/model"
)

// TaskStore owns the in-memory mapping and writes it through to its backend
// after every mutation.
type TaskStore struct {
	backend Backend
	tasks   Tasks
}

func OpenTaskStore(ctx context.Context, backend Backend) (*TaskStore, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	tasks, err := backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = Tasks{}
	}
	return &TaskStore{backend: backend, tasks: tasks}, nil
}

func (s *TaskStore) Location() string { return s.backend.Location() }

// AddTask reports whether a task was appended. Empty text is a no-op.
func (s *TaskStore) AddTask(ctx context.Context, key model.DateKey, text string) (bool, error) {
	if !s.tasks.Add(key, text) {
		return false, nil
	}
	return true, s.backend.Save(ctx, s.tasks)
}

// RemoveTask removes the task at the 1-based index. An invalid index leaves
// the store untouched and is not an error.
func (s *TaskStore) RemoveTask(ctx context.Context, key model.DateKey, index int) (bool, error) {
	if !s.tasks.Remove(key, index) {
		return false, nil
	}
	return true, s.backend.Save(ctx, s.tasks)
}

func (s *TaskStore) TasksFor(key model.DateKey) []string {
	return s.tasks.For(key)
}

func (s *TaskStore) TasksInMonth(year, month int) []DayTasks {
	return s.tasks.InMonth(year, month)
}

func (s *TaskStore) CountsForMonth(year, month int) map[int]int {
	out := make(map[int]int)
	for _, dt := range s.tasks.InMonth(year, month) {
		out[dt.Day] = len(dt.Tasks)
	}
	return out
}

func (s *TaskStore) Snapshot() Tasks {
	return s.tasks.Clone()
}

func (s *TaskStore) Len() int {
	return s.tasks.Count()
}
