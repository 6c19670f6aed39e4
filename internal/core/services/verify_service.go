package services

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/drksci/resumepdf/internal/core/domain"
	"github.com/drksci/resumepdf/internal/core/ports"
)

// ErrPayloadMismatch is returned by callers when a file on disk differs from the payload
var ErrPayloadMismatch = errors.New("file does not match embedded payload")

// VerifyService compares a persisted file against the payload
type VerifyService struct {
	sink ports.Sink
}

// NewVerifyService creates a new verify service
func NewVerifyService(sink ports.Sink) *VerifyService {
	return &VerifyService{
		sink: sink,
	}
}

type VerifyRequest struct {
	Payload     domain.Payload
	Destination domain.Destination
}

type VerifyResponse struct {
	Path           string
	Size           int
	ExpectedSize   int
	Digest         string
	ExpectedDigest string
	Match          bool
}

// Execute reads the destination back and compares length and contents
func (s *VerifyService) Execute(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	path := req.Destination.Path
	if path == "" {
		return nil, goerr.New("destination path cannot be empty")
	}

	exists, err := s.sink.Exists(ctx, path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to verify PDF", goerr.V("path", path))
	}
	if !exists {
		return nil, goerr.Wrap(fs.ErrNotExist, "destination does not exist", goerr.V("path", path))
	}

	data, err := s.sink.ReadFile(ctx, path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to verify PDF", goerr.V("path", path))
	}

	resp := &VerifyResponse{
		Path:           path,
		Size:           len(data),
		ExpectedSize:   req.Payload.Len(),
		Digest:         domain.Digest(data),
		ExpectedDigest: req.Payload.Digest(),
		Match:          req.Payload.Matches(data),
	}

	ctxlog.From(ctx).Debug("verified destination",
		slog.String("path", path),
		slog.Int("size", resp.Size),
		slog.Bool("match", resp.Match),
	)

	return resp, nil
}
