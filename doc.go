// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the exercise tracker server.

The exercise tracker is a small JSON API: clients create users by username,
log exercises (description, duration in minutes, optional date) against a
user, and read back a user's log filtered by date window and count.

# Starting the Server

With no configuration the server listens on port 3000 and keeps its data in
a local SQLite file:

	go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

A .env file in the working directory is loaded before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite, postgres or mongo (default: sqlite)
  - DATABASE_URL (-d): Connection string or SQLite file path
  - MONGO_URI: MongoDB connection string, selects the mongo backend
  - LOG_LEVEL (--log-level): debug, info, warn or error (default: info)
  - LOG_FILE (--log-file): Also write logs to a rotating file

# Architecture

  - handlers: HTTP request handlers (users, exercises, logs, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, body parsing, JSON helpers
  - models: Request/response and domain types
  - store: Persistence contract, with sqlstore and mongostore backends
  - db: Backend selection from configuration
  - logging: slog setup with optional file rotation
  - cliparse: Configuration parsing
  - web: Embedded landing page

See package documentation for each component.
*/
package main
