package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
    id             uuid PRIMARY KEY,
    owner_id       text NOT NULL,
    status         text NOT NULL,
    created_at     timestamptz NOT NULL DEFAULT now(),
    total_amount   numeric NOT NULL,
    total_currency text NOT NULL,
    push_enabled   boolean NOT NULL DEFAULT false,
    promo_code     text NOT NULL DEFAULT '',
    pickup         boolean NOT NULL DEFAULT false,
    operator_phone text NOT NULL DEFAULT '',
    dishes         jsonb NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS orders_owner_created_idx ON orders (owner_id, created_at DESC);

CREATE TABLE IF NOT EXISTS bonuses (
    id        uuid PRIMARY KEY,
    owner_id  text NOT NULL,
    amount    numeric NOT NULL,
    order_sum numeric NOT NULL,
    currency  text NOT NULL,
    earned_at timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS bonuses_owner_idx ON bonuses (owner_id);
`

// EnsureSchema creates the order-history and bonus-ledger tables.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	return nil
}

// Connect opens a pool sized for the ordering workload and verifies it.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	cfg.MaxConns = 8
	cfg.MinConns = 1
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}
	return pool, nil
}
