package port

import (
	"context"
	"time"

	"github.com/dmoreno/carrito/internal/domain"
)

// Meta is storage-owned metadata stamped on every saved snapshot.
type Meta struct {
	SnapshotID string
	UpdatedAt  time.Time
}

// SnapshotStore persists one CartState blob per key. Load reports ok=false
// when nothing is stored under the key; callers fall back to the default
// state. Concurrent writers to the same key are last-writer-wins.
type SnapshotStore interface {
	Load(ctx context.Context, key string) (domain.CartState, Meta, bool, error)
	Save(ctx context.Context, key string, state domain.CartState, meta Meta) (Meta, error)
}
