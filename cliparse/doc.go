// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: Connection string for the selected store
  - DatabaseType: sqlite (default), postgres or mongo
  - LogFile: Optional rotating log file
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-log-file   Log file path
	-log-level  Log level

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LOG_FILE      → -log-file
	LOG_LEVEL     → -log-level

MONGO_URI is honoured when no DATABASE_URL is given and selects the mongo
store unless another type was requested. CLI flags take precedence over
environment variables. main loads a .env file into the environment first.

# Validation

ParseFlags returns an error if:

  - PORT is not a number
  - the database type is unknown
  - postgres or mongo is selected without a URL

SQLite falls back to a local exercise-tracker.db file.
*/
package cliparse
