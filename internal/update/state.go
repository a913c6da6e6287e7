package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/agenda/internal/storage"
)

// OpenStore opens the configured backend and loads the task mapping from it.
// The returned close func releases the backend.
func OpenStore(ctx context.Context, cfg RuntimeConfig, logger *log.Logger) (*storage.TaskStore, func() error, error) {
	noop := func() error { return nil }
	var (
		backend storage.Backend
		closer  = noop
	)
	switch cfg.Backend {
	case BackendSQLite:
		path := cfg.TaskFile
		if strings.HasSuffix(path, ".json") {
			path = strings.TrimSuffix(path, ".json") + ".db"
		}
		sqlite, err := storage.OpenSQLite(ctx, path)
		if err != nil {
			return nil, noop, err
		}
		backend, closer = sqlite, sqlite.Close
	case BackendJSON, "":
		jsonFile, err := storage.NewJSONFileBackend(cfg.TaskFile)
		if err != nil {
			return nil, noop, err
		}
		backend = jsonFile
	default:
		return nil, noop, fmt.Errorf("config: unsupported backend %q", cfg.Backend)
	}

	store, err := storage.OpenTaskStore(ctx, backend)
	if err != nil {
		_ = closer()
		return nil, noop, fmt.Errorf("load tasks from %s: %w", backend.Location(), err)
	}
	if logger != nil {
		logger.Info("tasks loaded", "backend", cfg.Backend, "path", backend.Location(), "tasks", store.Len())
	}
	return store, closer, nil
}
