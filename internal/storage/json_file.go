package storage

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sandeepkv93/agenda/internal/model"
)

//go:embed schema/tasks.schema.json
var tasksSchema string

// JSONFileBackend stores tasks as one pretty-printed JSON object keyed by
// YYYY-MM-DD.
type JSONFileBackend struct {
	path   string
	schema *jsonschema.Schema
}

func NewJSONFileBackend(path string) (*JSONFileBackend, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("storage: empty task file path")
	}
	schema, err := jsonschema.CompileString("tasks.schema.json", tasksSchema)
	if err != nil {
		return nil, fmt.Errorf("compile task schema: %w", err)
	}
	return &JSONFileBackend{path: trimmed, schema: schema}, nil
}

func (b *JSONFileBackend) Location() string { return b.path }

func (b *JSONFileBackend) Load(ctx context.Context) (Tasks, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Tasks{}, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return Tasks{}, nil
	}
	return b.decode(raw)
}

func (b *JSONFileBackend) decode(raw []byte) (Tasks, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, b.path, err)
	}
	if err := b.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, b.path, err)
	}
	var byDate map[string][]string
	if err := json.Unmarshal(raw, &byDate); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, b.path, err)
	}
	out := make(Tasks, len(byDate))
	for rawKey, list := range byDate {
		key, err := model.ParseDateKey(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, b.path, err)
		}
		if len(list) == 0 {
			continue
		}
		out[key] = list
	}
	return out, nil
}

func (b *JSONFileBackend) Save(ctx context.Context, tasks Tasks) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(b.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create task dir: %w", err)
		}
	}
	byDate := make(map[string][]string, len(tasks))
	for key, list := range tasks {
		if len(list) == 0 {
			continue
		}
		byDate[key.String()] = list
	}
	payload, err := encodeTasks(byDate)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}

// encodeTasks keeps task text readable: no HTML escaping, 4-space indent and
// a trailing newline.
func encodeTasks(byDate map[string][]string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(byDate); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
