package filesystem

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/viant/afs"

	"github.com/drksci/resumepdf/internal/core/ports"
)

// FileSink writes payloads to the local filesystem
type FileSink struct {
	fs afs.Service
}

// NewFileSink creates a new filesystem-backed sink
func NewFileSink() *FileSink {
	return &FileSink{
		fs: afs.New(),
	}
}

// Ensure it implements the interface
var _ ports.Sink = (*FileSink)(nil)

// WriteFile opens path for writing, truncating any existing file, and writes
// data in a single call. The parent directory must already exist.
func (s *FileSink) WriteFile(ctx context.Context, path string, data []byte) (n int, err error) {
	if err := ctx.Err(); err != nil {
		return 0, goerr.Wrap(err, "write cancelled", goerr.V("path", path))
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to open destination", goerr.V("path", path))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = goerr.Wrap(cerr, "failed to close destination", goerr.V("path", path))
		}
	}()

	n, err = f.Write(data)
	if err != nil {
		return n, goerr.Wrap(err, "failed to write destination", goerr.V("path", path), goerr.V("written", n))
	}
	if n != len(data) {
		return n, goerr.Wrap(io.ErrShortWrite, "failed to write destination", goerr.V("path", path), goerr.V("written", n))
	}

	return n, nil
}

// ReadFile downloads the contents of path
func (s *FileSink) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := s.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read destination", goerr.V("path", path))
	}
	return data, nil
}

// Exists checks if path exists
func (s *FileSink) Exists(ctx context.Context, path string) (bool, error) {
	ok, err := s.fs.Exists(ctx, path)
	if err != nil {
		return false, goerr.Wrap(err, "failed to stat destination", goerr.V("path", path))
	}
	return ok, nil
}
