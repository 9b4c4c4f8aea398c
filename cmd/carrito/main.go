package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/dmoreno/carrito/internal/domain"
	"github.com/dmoreno/carrito/internal/persist"
	"github.com/dmoreno/carrito/internal/port"
	"github.com/dmoreno/carrito/internal/store"
	"github.com/dmoreno/carrito/pkg/config"
	"github.com/dmoreno/carrito/pkg/logger"
	"github.com/dmoreno/carrito/pkg/shutdown"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Demo driver for the cart store. State survives between invocations through
// the configured snapshot store, so e.g.:
//
//	carrito add 2 3
//	carrito show
//	carrito clear
func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "carrito",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	snapshots, cleanup, err := newSnapshotStore(ctx, cfg)
	if err != nil {
		log.Error("snapshot store init failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer cleanup()

	cartStore, err := store.New(ctx, snapshots, store.WithKey(cfg.StoreKey))
	if err != nil {
		log.Error("cart store init failed", slog.Any("err", err))
		os.Exit(1)
	}

	unsubscribe := cartStore.Subscribe(func(s domain.CartState) {
		log.Debug("state changed",
			slog.Int("cart_lines", len(s.Cart)),
			slog.String("total", s.Total.Amount.String()))
	})
	defer unsubscribe()

	if err := run(ctx, cartStore, os.Args[1:]); err != nil {
		log.Error("command failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func newSnapshotStore(ctx context.Context, cfg config.Config) (port.SnapshotStore, func(), error) {
	if cfg.PostgresURL != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		snapshots, err := persist.NewPostgres(pool)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("persist.NewPostgres: %w", err)
		}
		return snapshots, pool.Close, nil
	}

	snapshots, err := persist.NewFile(cfg.StoreDir)
	if err != nil {
		return nil, nil, fmt.Errorf("persist.NewFile: %w", err)
	}
	return snapshots, func() {}, nil
}

func run(ctx context.Context, cartStore *store.CartStore, args []string) error {
	if len(args) == 0 {
		show(cartStore)
		return nil
	}

	switch cmd := args[0]; cmd {
	case "add":
		ids, err := parseIDs(args[1:])
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := cartStore.AddToCart(ctx, id); err != nil {
				return fmt.Errorf("AddToCart: %w", err)
			}
		}
		if err := cartStore.RecalculateTotal(ctx); err != nil {
			return fmt.Errorf("RecalculateTotal: %w", err)
		}
		show(cartStore)
		return nil

	case "remove":
		ids, err := parseIDs(args[1:])
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := cartStore.DeleteFromCart(ctx, id); err != nil {
				return fmt.Errorf("DeleteFromCart: %w", err)
			}
		}
		if err := cartStore.RecalculateTotal(ctx); err != nil {
			return fmt.Errorf("RecalculateTotal: %w", err)
		}
		show(cartStore)
		return nil

	case "clear":
		if err := cartStore.ClearCart(ctx); err != nil {
			return fmt.Errorf("ClearCart: %w", err)
		}
		show(cartStore)
		return nil

	case "show":
		show(cartStore)
		return nil

	default:
		return fmt.Errorf("unknown command %q, want add|remove|clear|show", cmd)
	}
}

func parseIDs(args []string) ([]int64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no product ids given")
	}

	var ids []int64
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("product id %q is not an integer", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func show(cartStore *store.CartStore) {
	snapshot := cartStore.Snapshot()

	fmt.Println("catalog:")
	for _, p := range snapshot.Products {
		fmt.Printf("  %d  %-10s %8s %s\n", p.ID, p.Name, p.Price.Amount.StringFixed(2), p.Price.Currency)
	}

	fmt.Println("cart:")
	for _, line := range snapshot.Cart {
		name := line.Name
		if line.IsPlaceholder() {
			name = "(unknown)"
		}
		fmt.Printf("  %-10s %8s\n", name, line.Price.Amount.StringFixed(2))
	}

	fmt.Printf("total: %s %s\n", snapshot.Total.Amount.StringFixed(2), snapshot.Total.Currency)
}
