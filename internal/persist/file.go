package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmoreno/carrito/internal/domain"
	"github.com/dmoreno/carrito/internal/port"
)

// File persists one snapshot per key as a JSON file <dir>/<key>.json, the
// local-storage equivalent for a process with a disk. A missing file reads
// as an empty slot.
type File struct {
	dir string
}

type fileEnvelope struct {
	SnapshotID string          `json:"snapshot_id"`
	UpdatedAt  time.Time       `json:"updated_at"`
	State      json.RawMessage `json:"state"`
}

func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is empty")
	}
	return &File{dir: dir}, nil
}

func (f *File) Load(_ context.Context, key string) (domain.CartState, port.Meta, bool, error) {
	if key == "" {
		return domain.CartState{}, port.Meta{}, false, fmt.Errorf("key is empty")
	}

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.CartState{}, port.Meta{}, false, nil
		}
		return domain.CartState{}, port.Meta{}, false, fmt.Errorf("os.ReadFile: %w", err)
	}

	var envelope fileEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return domain.CartState{}, port.Meta{}, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	state, err := decodeState(envelope.State)
	if err != nil {
		return domain.CartState{}, port.Meta{}, false, fmt.Errorf("decodeState: %w", err)
	}

	meta := port.Meta{
		SnapshotID: envelope.SnapshotID,
		UpdatedAt:  envelope.UpdatedAt,
	}
	return state, meta, true, nil
}

func (f *File) Save(_ context.Context, key string, state domain.CartState, meta port.Meta) (port.Meta, error) {
	if key == "" {
		return port.Meta{}, fmt.Errorf("key is empty")
	}

	blob, err := encodeState(state)
	if err != nil {
		return port.Meta{}, fmt.Errorf("encodeState: %w", err)
	}

	stamped := stampMeta(meta)

	data, err := json.MarshalIndent(fileEnvelope{
		SnapshotID: stamped.SnapshotID,
		UpdatedAt:  stamped.UpdatedAt,
		State:      blob,
	}, "", "  ")
	if err != nil {
		return port.Meta{}, fmt.Errorf("json.MarshalIndent: %w", err)
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return port.Meta{}, fmt.Errorf("os.MkdirAll: %w", err)
	}

	if err := os.WriteFile(f.path(key), data, 0644); err != nil {
		return port.Meta{}, fmt.Errorf("os.WriteFile: %w", err)
	}

	return stamped, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
