package storage

import (
	"context"
	"errors"
)

var (
	ErrCorruptStore = errors.New("storage: corrupt store")
	ErrNilBackend   = errors.New("storage: nil backend")
)

// Backend persists the whole task mapping. Load on a store that does not exist
// yet returns an empty mapping.
type Backend interface {
	Load(ctx context.Context) (Tasks, error)
	Save(ctx context.Context, tasks Tasks) error
	Location() string
}
