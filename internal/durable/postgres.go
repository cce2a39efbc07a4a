// Package durable persists writes to the shared Postgres store. Every node
// talks to the same logical database, so a SET acknowledged by any owner is
// durable cluster-wide no matter which nodes die afterwards.
package durable

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultTimeout bounds each statement so a slow database degrades into a
// typed durability error instead of stalling the write path.
const DefaultTimeout = 1 * time.Second

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	putSQL    = `INSERT INTO kv_store (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	deleteSQL = `DELETE FROM kv_store WHERE key = $1`
	getSQL    = `SELECT value FROM kv_store WHERE key = $1`
)

// Postgres is the write-through adapter over the kv_store table.
type Postgres struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// Open connects to url, verifies the database is reachable, and ensures the
// kv_store table exists. An unreachable database is a boot error, not
// something to retry into.
func Open(ctx context.Context, url string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("durable: parse %s: %w", url, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("durable: ping: %w", err)
	}
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("durable: create table: %w", err)
	}
	return &Postgres{pool: pool, timeout: DefaultTimeout}, nil
}

// Put upserts (key, value).
func (p *Postgres) Put(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if _, err := p.pool.Exec(ctx, putSQL, key, value); err != nil {
		return fmt.Errorf("durable: put %q: %w", key, err)
	}
	return nil
}

// Delete removes the row for key. Deleting an absent key is not an error.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if _, err := p.pool.Exec(ctx, deleteSQL, key); err != nil {
		return fmt.Errorf("durable: delete %q: %w", key, err)
	}
	return nil
}

// Get reads the value for key, reporting absence without error.
func (p *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var value []byte
	err := p.pool.QueryRow(ctx, getSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("durable: get %q: %w", key, err)
	}
	return value, true, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}
