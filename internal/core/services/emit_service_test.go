package services

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drksci/resumepdf/internal/core/domain"
	"github.com/drksci/resumepdf/internal/core/ports/mocks"
)

const testDir = "/tmp"

func testPayload() domain.Payload {
	return domain.NewPayload([]byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n%%EOF"))
}

func TestEmitService_Execute(t *testing.T) {
	tests := []struct {
		name        string
		dest        domain.Destination
		setupMocks  func(*mocks.MockSink)
		expectError error
	}{
		{
			name: "writes payload to existing directory",
			dest: domain.Destination{Path: "/tmp/out.pdf", Fragment: "out.pdf"},
		},
		{
			name:        "missing directory",
			dest:        domain.Destination{Path: "/nonexistent-dir/out.pdf", Fragment: "out.pdf"},
			expectError: fs.ErrNotExist,
		},
		{
			name: "permission denied",
			dest: domain.Destination{Path: "/tmp/locked.pdf", Fragment: "locked.pdf"},
			setupMocks: func(s *mocks.MockSink) {
				s.FailWith("/tmp/locked.pdf", fs.ErrPermission)
			},
			expectError: fs.ErrPermission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := mocks.NewMockSink(testDir)
			if tt.setupMocks != nil {
				tt.setupMocks(sink)
			}
			service := NewEmitService(sink)
			payload := testPayload()

			resp, err := service.Execute(context.Background(), EmitRequest{
				Payload:     payload,
				Destination: tt.dest,
			})

			if tt.expectError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectError), "unexpected error: %v", err)
				assert.Nil(t, resp)
				exists, err := sink.Exists(context.Background(), tt.dest.Path)
				require.NoError(t, err)
				assert.False(t, exists)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.dest.Path, resp.Path)
			assert.Equal(t, payload.Len(), resp.BytesWritten)

			got, err := sink.ReadFile(context.Background(), tt.dest.Path)
			require.NoError(t, err)
			assert.True(t, payload.Matches(got))
		})
	}
}

func TestEmitService_EmptyPath(t *testing.T) {
	sink := mocks.NewMockSink(testDir)
	service := NewEmitService(sink)

	_, err := service.Execute(context.Background(), EmitRequest{Payload: testPayload()})
	assert.Error(t, err)
	assert.Zero(t, sink.Writes(), "no write should be attempted without a path")
}

func TestEmitService_Idempotent(t *testing.T) {
	ctx := context.Background()
	sink := mocks.NewMockSink(testDir)
	service := NewEmitService(sink)
	req := EmitRequest{
		Payload:     testPayload(),
		Destination: domain.Destination{Path: "/tmp/out.pdf", Fragment: "out.pdf"},
	}

	_, err := service.Execute(ctx, req)
	require.NoError(t, err)
	first, err := sink.ReadFile(ctx, req.Destination.Path)
	require.NoError(t, err)

	_, err = service.Execute(ctx, req)
	require.NoError(t, err)
	second, err := sink.ReadFile(ctx, req.Destination.Path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, sink.Writes())
}

func TestEmitResponse_Message(t *testing.T) {
	tests := []struct {
		name     string
		dest     domain.Destination
		expected string
	}{
		{
			"fragment",
			domain.Destination{Path: "/site/public/resume.pdf", Fragment: "public/resume.pdf"},
			"PDF created successfully at public/resume.pdf",
		},
		{
			"no fragment falls back to path",
			domain.Destination{Path: "/tmp/out.pdf"},
			"PDF created successfully at /tmp/out.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := mocks.NewMockSink(testDir, "/site/public")
			resp, err := NewEmitService(sink).Execute(context.Background(), EmitRequest{
				Payload:     testPayload(),
				Destination: tt.dest,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.Message())
		})
	}
}
