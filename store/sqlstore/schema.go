// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dialect string) error {
	var schema string
	switch dialect {
	case DialectPostgres:
		schema = postgresSchema
	case DialectSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Dates are stored as Unix milliseconds so range filters compare integers in both dialects.
// seq records insertion order.

const postgresSchema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    username TEXT NOT NULL UNIQUE
);

-- Exercises
CREATE TABLE IF NOT EXISTS exercises (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    user_id TEXT NOT NULL REFERENCES users(id),
    description TEXT NOT NULL,
    duration DOUBLE PRECISION NOT NULL,
    date_ms BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_exercises_user_date ON exercises(user_id, date_ms);
`

const sqliteSchema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    username TEXT NOT NULL UNIQUE
);

-- Exercises
CREATE TABLE IF NOT EXISTS exercises (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    user_id TEXT NOT NULL REFERENCES users(id),
    description TEXT NOT NULL,
    duration REAL NOT NULL,
    date_ms INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_exercises_user_date ON exercises(user_id, date_ms);
`
