// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"

	"github.com/danielhkuo/exercise-tracker/cliparse"
	"github.com/danielhkuo/exercise-tracker/store"
	"github.com/danielhkuo/exercise-tracker/store/mongostore"
	"github.com/danielhkuo/exercise-tracker/store/sqlstore"
)

// Open connects to the store selected by cfg.DatabaseType and prepares it
// (schema for SQL backends, indexes for MongoDB).
func Open(ctx context.Context, cfg cliparse.Config) (store.Store, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		return sqlstore.Open(ctx, sqlstore.DialectSQLite, cfg.DatabaseURL)
	case cliparse.DatabasePostgres:
		return sqlstore.Open(ctx, sqlstore.DialectPostgres, cfg.DatabaseURL)
	case cliparse.DatabaseMongo:
		return mongostore.Open(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}
