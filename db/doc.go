// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open accepts "sqlite" (modernc.org/sqlite, pure Go) or "postgres" (lib/pq):

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

Queries are written with ? placeholders. DB.ExecContext, QueryContext and
QueryRowContext rebind them to $1, $2, ... on postgres.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - vote: ingested roll-call records (JSON payload)
  - population: named population records (JSON payload)
  - preference: visitor-scoped key/value preferences

# Indexes

  - vote.(chamber, roll_call)
*/
package db
