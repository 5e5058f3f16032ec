package fsxmem

import (
	"context"
	"fmt"
	"sync"

	"github.com/Abraxas-365/jobboard/pkg/fsx"
)

// MemoryFileSystem keeps files in a map. Contents are copied on the way in and
// out so callers cannot mutate stored data.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string][]byte)}
}

func (m *MemoryFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, fsx.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.files[path]
	return ok, nil
}

var _ fsx.FileSystem = (*MemoryFileSystem)(nil)
