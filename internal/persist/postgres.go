package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmoreno/carrito/internal/domain"
	"github.com/dmoreno/carrito/internal/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres keeps one row per key in cart_snapshots, with the serialized
// state as JSONB. Save is an upsert, so concurrent writers to the same key
// stay last-writer-wins.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) (*Postgres, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Load(ctx context.Context, key string) (domain.CartState, port.Meta, bool, error) {
	if key == "" {
		return domain.CartState{}, port.Meta{}, false, fmt.Errorf("key is empty")
	}

	var (
		blob       []byte
		snapshotID string
		updatedAt  time.Time
	)
	err := p.pool.QueryRow(ctx,
		`SELECT snapshot, snapshot_id::text, updated_at FROM cart_snapshots WHERE key = $1`,
		key).Scan(&blob, &snapshotID, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CartState{}, port.Meta{}, false, nil
	}
	if err != nil {
		return domain.CartState{}, port.Meta{}, false, fmt.Errorf("pool.QueryRow: %w", err)
	}

	state, err := decodeState(blob)
	if err != nil {
		return domain.CartState{}, port.Meta{}, false, fmt.Errorf("decodeState: %w", err)
	}

	meta := port.Meta{
		SnapshotID: snapshotID,
		UpdatedAt:  updatedAt,
	}
	return state, meta, true, nil
}

func (p *Postgres) Save(ctx context.Context, key string, state domain.CartState, meta port.Meta) (port.Meta, error) {
	if key == "" {
		return port.Meta{}, fmt.Errorf("key is empty")
	}

	blob, err := encodeState(state)
	if err != nil {
		return port.Meta{}, fmt.Errorf("encodeState: %w", err)
	}

	stamped := stampMeta(meta)

	_, err = p.pool.Exec(ctx,
		`INSERT INTO cart_snapshots (key, snapshot, snapshot_id, updated_at)
		 VALUES ($1, $2, $3::uuid, $4)
		 ON CONFLICT (key) DO UPDATE
		 SET snapshot   = EXCLUDED.snapshot,
		     snapshot_id = EXCLUDED.snapshot_id,
		     updated_at = EXCLUDED.updated_at`,
		key, blob, stamped.SnapshotID, stamped.UpdatedAt)
	if err != nil {
		return port.Meta{}, fmt.Errorf("pool.Exec: %w", err)
	}

	return stamped, nil
}
