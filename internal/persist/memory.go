package persist

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmoreno/carrito/internal/domain"
	"github.com/dmoreno/carrito/internal/port"
	"github.com/google/uuid"
)

// Memory is an in-process SnapshotStore for tests and examples. Blobs are
// kept serialized so stored snapshots never alias live state.
type Memory struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

type memoryRecord struct {
	blob []byte
	meta port.Meta
}

func NewMemory() *Memory {
	return &Memory{records: map[string]memoryRecord{}}
}

func (m *Memory) Load(_ context.Context, key string) (domain.CartState, port.Meta, bool, error) {
	if key == "" {
		return domain.CartState{}, port.Meta{}, false, fmt.Errorf("key is empty")
	}

	m.mu.RLock()
	record, ok := m.records[key]
	m.mu.RUnlock()
	if !ok {
		return domain.CartState{}, port.Meta{}, false, nil
	}

	state, err := decodeState(record.blob)
	if err != nil {
		return domain.CartState{}, port.Meta{}, false, fmt.Errorf("decodeState: %w", err)
	}

	return state, record.meta, true, nil
}

func (m *Memory) Save(_ context.Context, key string, state domain.CartState, meta port.Meta) (port.Meta, error) {
	if key == "" {
		return port.Meta{}, fmt.Errorf("key is empty")
	}

	blob, err := encodeState(state)
	if err != nil {
		return port.Meta{}, fmt.Errorf("encodeState: %w", err)
	}

	stamped := stampMeta(meta)

	m.mu.Lock()
	m.records[key] = memoryRecord{blob: blob, meta: stamped}
	m.mu.Unlock()

	return stamped, nil
}

// stampMeta fills in the storage-owned fields on every save.
func stampMeta(meta port.Meta) port.Meta {
	if meta.SnapshotID == "" {
		meta.SnapshotID = uuid.NewString()
	}
	meta.UpdatedAt = time.Now().UTC()
	return meta
}
