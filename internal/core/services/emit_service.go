package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/drksci/resumepdf/internal/core/domain"
	"github.com/drksci/resumepdf/internal/core/ports"
)

// EmitService writes a fixed payload to its destination
type EmitService struct {
	sink ports.Sink
}

// NewEmitService creates a new emit service
func NewEmitService(sink ports.Sink) *EmitService {
	return &EmitService{
		sink: sink,
	}
}

type EmitRequest struct {
	Payload     domain.Payload
	Destination domain.Destination
}

type EmitResponse struct {
	Path         string
	Fragment     string
	BytesWritten int
}

// Message returns the confirmation line printed after a successful emit
func (r *EmitResponse) Message() string {
	return "PDF created successfully at " + r.Fragment
}

// Execute writes the payload to the destination, overwriting any existing file.
// No retry is attempted on failure.
func (s *EmitService) Execute(ctx context.Context, req EmitRequest) (*EmitResponse, error) {
	dest := req.Destination
	if dest.Path == "" {
		return nil, goerr.New("destination path cannot be empty")
	}

	logger := ctxlog.From(ctx)
	logger.Debug("writing payload",
		slog.String("path", dest.Path),
		slog.Int("bytes", req.Payload.Len()),
		slog.String("sha256", req.Payload.Digest()),
	)

	n, err := s.sink.WriteFile(ctx, dest.Path, req.Payload.Bytes())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to emit PDF", goerr.V("path", dest.Path))
	}
	if n != req.Payload.Len() {
		return nil, goerr.Wrap(io.ErrShortWrite, "failed to emit PDF",
			goerr.V("path", dest.Path),
			goerr.V("written", n),
			goerr.V("expected", req.Payload.Len()),
		)
	}

	logger.Info("payload written", slog.String("path", dest.Path), slog.Int("bytes", n))

	return &EmitResponse{
		Path:         dest.Path,
		Fragment:     dest.DisplayName(),
		BytesWritten: n,
	}, nil
}
