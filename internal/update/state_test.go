package update

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/agenda/internal/storage"
)

func TestOpenStoreJSON(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.TaskFile = filepath.Join(t.TempDir(), "tasks.json")
	store, closeFn, err := OpenStore(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer closeFn()
	if store.Location() != cfg.TaskFile || store.Len() != 0 {
		t.Fatalf("unexpected store: %s %d", store.Location(), store.Len())
	}
}

func TestOpenStoreSQLiteUsesDBPath(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.Backend = BackendSQLite
	cfg.TaskFile = filepath.Join(t.TempDir(), "tasks.json")
	store, closeFn, err := OpenStore(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer closeFn()
	if filepath.Ext(store.Location()) != ".db" {
		t.Fatalf("expected sqlite path, got %s", store.Location())
	}
	if _, err := os.Stat(store.Location()); err != nil {
		t.Fatalf("expected db file: %v", err)
	}
}

func TestOpenStoreCorruptFileIsFatal(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.TaskFile = filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(cfg.TaskFile, []byte(`{"soon": "x"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, _, err := OpenStore(context.Background(), cfg, nil)
	if !errors.Is(err, storage.ErrCorruptStore) {
		t.Fatalf("expected ErrCorruptStore, got %v", err)
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "agenda.log")
	logger, closeFn, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("hello", "k", "v")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	raw, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("expected log output")
	}
}
