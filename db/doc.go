// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the configured store.

# Opening a Store

Open picks the backend from the configuration:

	st, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

  - sqlite: modernc.org/sqlite, file path or ":memory:"
  - postgres: lib/pq connection string
  - mongo: mongodb:// URI, database taken from the URI path

SQL backends create their tables on open (IF NOT EXISTS). The mongo backend
ensures a unique index on users.username and an index on exercises
(userId, date).

# Tables

	users     (seq, id, username UNIQUE)
	exercises (seq, id, user_id → users.id, description, duration, date_ms)

seq preserves insertion order. date_ms holds Unix milliseconds.
*/
package db
