package models

import (
	"context"
	"sync"
)

// MemoryRepo is a process-local SlotRepo used in tests and with STORAGE_DRIVER=memory.
type MemoryRepo struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func MemoryNewRepo() *MemoryRepo {
	return &MemoryRepo{slots: make(map[string][]byte)}
}

func (m *MemoryRepo) GetSlot(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryRepo) SetSlot(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryRepo) DeleteSlot(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}
