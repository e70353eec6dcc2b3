package persistence

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by Open
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Store reads and writes one serialized document
type Store interface {
	// Read returns ErrNotFound when nothing has been written yet
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Close() error
	// Name describes the store for logs and status lines
	Name() string
}

// Open creates the store for backend; world keys the document in SQLite
func Open(backend, path, world string) (Store, error) {
	switch strings.ToLower(backend) {
	case "", BackendFile:
		return NewFileStore(path)
	case BackendSQLite:
		return OpenSQLite(path, world)
	}
	return nil, fmt.Errorf("persistence: unknown backend %q", backend)
}
