package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func setupSQLite(t *testing.T) *SQLiteBackend {
	t.Helper()
	backend, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "data", "agenda-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

func TestSQLiteLoadEmpty(t *testing.T) {
	backend := setupSQLite(t)
	tasks, err := backend.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty mapping, got %#v", tasks)
	}
}

func TestSQLiteRoundTripPreservesOrder(t *testing.T) {
	backend := setupSQLite(t)
	ctx := context.Background()
	in := Tasks{
		key(t, "2025-03-15"): {"z last alphabetically", "a first alphabetically", "a first alphabetically"},
		key(t, "2025-03-01"): {"rent"},
	}
	if err := backend.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := backend.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("round trip mismatch: %#v", got)
	}

	delete(in, key(t, "2025-03-01"))
	if err := backend.Save(ctx, in); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err = backend.Load(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("expected full rewrite, got %#v", got)
	}
}
