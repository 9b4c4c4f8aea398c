package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmoreno/carrito/internal/domain"
	"github.com/dmoreno/carrito/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultKey is the slot every session persists its snapshot under.
const DefaultKey = "carrito-compras"

// CartStore owns the current CartState snapshot. Every mutation produces a
// new snapshot from the previous one, swaps it in atomically, writes it
// through the injected SnapshotStore and notifies subscribers. Reads always
// return copies, never the live state.
type CartStore struct {
	snapshots port.SnapshotStore
	key       string

	mu      sync.RWMutex
	state   domain.CartState
	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(domain.CartState)
}

type Option func(*CartStore)

// WithKey overrides the persistence key, mainly so tests can isolate slots.
func WithKey(key string) Option {
	return func(s *CartStore) {
		s.key = key
	}
}

// New restores the snapshot stored under the key, or starts from
// domain.DefaultState when the slot is empty.
func New(ctx context.Context, snapshots port.SnapshotStore, options ...Option) (*CartStore, error) {
	if snapshots == nil {
		return nil, fmt.Errorf("snapshots is nil")
	}

	s := &CartStore{
		snapshots: snapshots,
		key:       DefaultKey,
	}
	for _, option := range options {
		option(s)
	}
	if s.key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	state, _, ok, err := snapshots.Load(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("snapshots.Load: %w", err)
	}
	if !ok {
		state = domain.DefaultState()
	}
	s.state = state

	return s, nil
}

// AddToCart appends the first catalog product matching id to the cart. An id
// absent from the catalog still appends a line, a placeholder product; the
// lookup itself never fails. The total is not recomputed, see
// RecalculateTotal.
func (s *CartStore) AddToCart(ctx context.Context, id int64) error {
	return s.mutate(ctx, func(state domain.CartState) domain.CartState {
		line, ok := state.FindProduct(id)
		if !ok {
			line = domain.PlaceholderProduct()
		}
		state.Cart = append(state.Cart, line)
		return state
	})
}

// DeleteFromCart removes every cart line with the given id, not just one.
// An id with no matching lines is a no-op that still persists and notifies.
func (s *CartStore) DeleteFromCart(ctx context.Context, id int64) error {
	return s.mutate(ctx, func(state domain.CartState) domain.CartState {
		kept := state.Cart[:0]
		for _, line := range state.Cart {
			if line.ID != id {
				kept = append(kept, line)
			}
		}
		state.Cart = kept
		return state
	})
}

// ClearCart replaces the whole state with the default snapshot: catalog
// restored, cart emptied, total reset to zero.
func (s *CartStore) ClearCart(ctx context.Context) error {
	return s.mutate(ctx, func(domain.CartState) domain.CartState {
		return domain.DefaultState()
	})
}

// RecalculateTotal sets Total to the sum over the current cart lines.
// Callers invoke it explicitly after mutations; AddToCart and DeleteFromCart
// leave the total untouched.
func (s *CartStore) RecalculateTotal(ctx context.Context) error {
	return s.mutate(ctx, func(state domain.CartState) domain.CartState {
		sum := decimal.Zero
		for _, line := range state.Cart {
			sum = sum.Add(line.Price.Amount)
		}
		state.Total = domain.Money{Amount: sum, Currency: currency.USD}
		return state
	})
}

func (s *CartStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone().Products
}

func (s *CartStore) Cart() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone().Cart
}

func (s *CartStore) Total() domain.Money {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Total
}

// Snapshot returns a full copy of the current state.
func (s *CartStore) Snapshot() domain.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers fn to be called synchronously with each new snapshot,
// in registration order. The returned func removes the subscription.
func (s *CartStore) Subscribe(fn func(domain.CartState)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// mutate applies one snapshot transition: clone, transform, swap, persist,
// notify. The in-memory swap commits even when the write fails; the error is
// returned so callers can surface it.
func (s *CartStore) mutate(ctx context.Context, transition func(domain.CartState) domain.CartState) error {
	s.mu.Lock()
	next := transition(s.state.Clone())
	s.state = next
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	_, saveErr := s.snapshots.Save(ctx, s.key, next, port.Meta{})

	for _, sub := range subs {
		sub.fn(next.Clone())
	}

	if saveErr != nil {
		return fmt.Errorf("snapshots.Save: %w", saveErr)
	}
	return nil
}
