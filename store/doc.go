// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the persistence contract shared by all backends.

# Backends

  - sqlstore: database/sql over PostgreSQL (lib/pq) or SQLite (modernc.org/sqlite)
  - mongostore: MongoDB collections via the official driver

Backends are selected at startup by db.Open.

# Errors

Implementations wrap their driver errors so callers can match with errors.Is:

  - ErrNotFound: no record with the given id or key
  - ErrDuplicate: unique constraint on username rejected an insert
  - ErrInvalidID: the id is not well formed for this backend
*/
package store
