package snapcache

import (
	"context"
	"sync"

	"github.com/gemarathon/backend/xlsxstore"
)

// Cache holds the last board snapshot that was read successfully. Read
// failures fall back to it so the dashboard degrades to stale data
// instead of a blank page.
type Cache interface {
	Put(ctx context.Context, board *xlsxstore.Board) error
	// Get returns the cached snapshot, or nil when nothing was stored.
	Get(ctx context.Context) (*xlsxstore.Board, error)
}

// Memory is the in-process default.
type Memory struct {
	mu    sync.RWMutex
	board *xlsxstore.Board
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Put(ctx context.Context, board *xlsxstore.Board) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.board = board
	return nil
}

func (m *Memory) Get(ctx context.Context) (*xlsxstore.Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.board, nil
}
