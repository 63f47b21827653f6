// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect names a supported database type
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// DB pairs a connection pool with its dialect. Queries are written with ?
// placeholders and rebound for postgres.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open connects to sqlite (modernc) or postgres (lib/pq) and pings it
func Open(ctx context.Context, dialect, url string) (*DB, error) {
	d := Dialect(strings.ToLower(dialect))
	if d != SQLite && d != Postgres {
		return nil, fmt.Errorf("unsupported database type %q", dialect)
	}

	conn, err := sql.Open(string(d), url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", d, err)
	}
	if d == SQLite {
		// A single writer avoids SQLITE_BUSY under concurrent requests
		conn.SetMaxOpenConns(1)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", d, err)
	}

	return &DB{DB: conn, Dialect: d}, nil
}

// Rebind rewrites ? placeholders as $1, $2, ... for postgres
func (d *DB) Rebind(query string) string {
	if d.Dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.DB.ExecContext(ctx, d.Rebind(query), args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.DB.QueryContext(ctx, d.Rebind(query), args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.DB.QueryRowContext(ctx, d.Rebind(query), args...)
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, d *DB) error {
	_, err := d.DB.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Portable between SQLite and PostgreSQL
const schema = `
-- Roll-call votes, stored as the ingested JSON payload
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    chamber TEXT NOT NULL,
    roll_call INTEGER NOT NULL,
    result TEXT NOT NULL,
    payload TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_vote_roll_call ON vote(chamber, roll_call);

-- Named population records
CREATE TABLE IF NOT EXISTS population (
    name TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Visitor preferences (key/value)
CREATE TABLE IF NOT EXISTS preference (
    pref_key TEXT PRIMARY KEY,
    pref_value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
