package mocks

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
)

// MockSink is an in-memory implementation of the Sink interface for testing
type MockSink struct {
	mu       sync.RWMutex
	files    map[string][]byte
	dirs     map[string]bool
	errs     map[string]error
	statErrs map[string]error
	writes   int
}

// NewMockSink creates a new mock sink. Writes succeed only inside dirs.
func NewMockSink(dirs ...string) *MockSink {
	m := &MockSink{
		files:    make(map[string][]byte),
		dirs:     make(map[string]bool),
		errs:     make(map[string]error),
		statErrs: make(map[string]error),
	}
	for _, d := range dirs {
		m.dirs[d] = true
	}
	return m
}

// WriteFile stores a copy of data under path
func (m *MockSink) WriteFile(ctx context.Context, path string, data []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes++
	if err, ok := m.errs[path]; ok {
		return 0, err
	}
	if !m.dirs[filepath.Dir(path)] {
		return 0, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	m.files[path] = bytes.Clone(data)
	return len(data), nil
}

// ReadFile returns the stored contents of path
func (m *MockSink) ReadFile(ctx context.Context, path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return bytes.Clone(data), nil
}

// Exists checks if a file was stored under path
func (m *MockSink) Exists(ctx context.Context, path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err, ok := m.statErrs[path]; ok {
		return false, err
	}
	_, ok := m.files[path]
	return ok, nil
}

// Helper methods for testing

// FailWith makes every write to path return err
func (m *MockSink) FailWith(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[path] = err
}

// FailStatWith makes every Exists check on path return err
func (m *MockSink) FailStatWith(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statErrs[path] = err
}

// Put stores data under path without counting it as a write
func (m *MockSink) Put(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[filepath.Dir(path)] = true
	m.files[path] = bytes.Clone(data)
}

// Writes returns the number of WriteFile calls
func (m *MockSink) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
