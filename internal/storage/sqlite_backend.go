package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/agenda/internal/model"
)

// SQLiteBackend keeps one row per task, ordered by position within a day.
type SQLiteBackend struct {
	db   *sql.DB
	path string
}

func NewSQLiteBackend(ctx context.Context, db *sql.DB, path string) (*SQLiteBackend, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if err := MigrateUp(ctx, db); err != nil {
		return nil, err
	}
	return &SQLiteBackend{db: db, path: path}, nil
}

func OpenSQLite(ctx context.Context, path string) (*SQLiteBackend, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("storage: empty sqlite path")
	}
	dir := filepath.Dir(trimmed)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", trimmed)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	backend, err := NewSQLiteBackend(ctx, db, trimmed)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return backend, nil
}

func (b *SQLiteBackend) Location() string { return b.path }

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) Load(ctx context.Context) (Tasks, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT day, body FROM day_tasks ORDER BY day, position`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	out := make(Tasks)
	for rows.Next() {
		var day, body string
		if err := rows.Scan(&day, &body); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		key, err := model.ParseDateKey(day)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, b.path, err)
		}
		out[key] = append(out[key], body)
	}
	return out, rows.Err()
}

func (b *SQLiteBackend) Save(ctx context.Context, tasks Tasks) (err error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM day_tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO day_tasks (day, position, body) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, key := range tasks.SortedKeys() {
		for pos, body := range tasks[key] {
			if _, err = stmt.ExecContext(ctx, key.String(), pos, body); err != nil {
				return fmt.Errorf("insert task %s#%d: %w", key, pos, err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
