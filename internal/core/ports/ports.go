package ports

import (
	"context"
)

// Sink defines the port for persisting and reading back emitted files
type Sink interface {
	// WriteFile creates or truncates path and writes data in one call.
	// The underlying handle is released on every return path.
	WriteFile(ctx context.Context, path string, data []byte) (int, error)

	// ReadFile returns the full contents of path
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// Exists checks if a file exists at path. A failed check is an error,
	// not a false result.
	Exists(ctx context.Context, path string) (bool, error)
}
