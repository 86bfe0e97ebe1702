// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands that own their flag set share the same definitions:

	fs := cliparse.Flags()
	cmd.Flags().AddFlagSet(fs)
	// after parsing
	cfg, err := cliparse.Load(cmd.Flags())

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: PointsPlus.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: text or json (default: text)

# CLI Flags

	-p, --port          Server port
	-d, --database-url  Database URL
	-t, --database-type Database type
	--log-level         Log level
	--log-format        Log format
	--env-file          .env file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LOG_LEVEL     → --log-level
	LOG_FORMAT    → --log-format

Variables may also come from the .env file. Real environment variables win
over the file, and CLI flags win over both.

# Validation

Load returns an error for an out-of-range port, an unknown database type,
an unparsable log level, or an unknown log format.
*/
package cliparse
