package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirumat/record-service/internal/sheet"
)

// MemoryStore is an in-memory sheet.Store used by tests and throwaway runs.
// It keeps the same observable semantics as the real backends: 1-indexed
// addressing, soft-empty LoadAll, first-match lookup.
type MemoryStore struct {
	mu     sync.RWMutex
	sheets map[string][][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sheets: make(map[string][][]string)}
}

func (m *MemoryStore) LoadAll(ctx context.Context, name string) ([][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows, ok := m.sheets[name]
	if !ok {
		return [][]string{}, nil
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *MemoryStore) AppendRow(ctx context.Context, name string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sheets[name]; !ok {
		return fmt.Errorf("%w: append to %q: %w", sheet.ErrWrite, name, sheet.ErrSheetNotFound)
	}
	m.sheets[name] = append(m.sheets[name], append([]string(nil), row...))
	return nil
}

func (m *MemoryStore) FindRowByValue(ctx context.Context, name, value string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i, row := range m.sheets[name] {
		for _, c := range row {
			if c == value {
				return i + 1, nil
			}
		}
	}
	return 0, sheet.ErrValueNotFound
}

func (m *MemoryStore) UpdateCell(ctx context.Context, name string, row, col int, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.sheets[name]
	if !ok || row < 1 || row > len(rows) || col < 1 {
		return fmt.Errorf("%w: update %s!R%dC%d", sheet.ErrWrite, name, row, col)
	}
	r := rows[row-1]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = value
	rows[row-1] = r
	return nil
}

func (m *MemoryStore) EnsureSheet(ctx context.Context, name string, header []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sheets[name]; ok {
		return nil
	}
	m.sheets[name] = [][]string{append([]string(nil), header...)}
	return nil
}
