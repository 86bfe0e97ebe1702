// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pointsplus/cliparse"
)

// Open connects to the configured database and verifies the connection.
// The caller owns the handle and must Close it at shutdown.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver, dsn := cfg.DatabaseType, cfg.DatabaseURL
	if driver == cliparse.DatabaseSQLite {
		dsn = sqliteDSN(dsn)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == cliparse.DatabaseSQLite {
		// one writer at a time; pragmas are per connection
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// sqliteDSN turns a plain file path into a modernc DSN with foreign keys
// enforced and a busy timeout. DSNs that already carry a query are kept.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var schema string
	switch dbType {
	case cliparse.DatabaseSQLite:
		schema = sqliteSchema
	case cliparse.DatabasePostgres:
		schema = postgresSchema
	default:
		return fmt.Errorf("failed to create schema: unsupported database type %q", dbType)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
-- School (single row)
CREATE TABLE IF NOT EXISTS school (
    school_id INTEGER PRIMARY KEY CHECK (school_id = 1),
    name TEXT NOT NULL
);

-- Houses
CREATE TABLE IF NOT EXISTS house (
    house_id INTEGER PRIMARY KEY AUTOINCREMENT,
    house TEXT NOT NULL UNIQUE,
    colour TEXT NOT NULL DEFAULT ''
);

-- Events
CREATE TABLE IF NOT EXISTS events (
    event_id INTEGER PRIMARY KEY AUTOINCREMENT,
    event TEXT NOT NULL UNIQUE,
    event_date TEXT
);

-- Arrangements (results)
CREATE TABLE IF NOT EXISTS arrangement (
    placing INTEGER NOT NULL CHECK (placing > 0),
    event_id INTEGER NOT NULL REFERENCES events(event_id),
    house_id INTEGER NOT NULL REFERENCES house(house_id),
    points INTEGER NOT NULL,
    UNIQUE (event_id, house_id, placing)
);

CREATE INDEX IF NOT EXISTS idx_arrangement_house_id ON arrangement(house_id);
`

const postgresSchema = `
-- School (single row)
CREATE TABLE IF NOT EXISTS school (
    school_id INTEGER PRIMARY KEY CHECK (school_id = 1),
    name TEXT NOT NULL
);

-- Houses
CREATE TABLE IF NOT EXISTS house (
    house_id SERIAL PRIMARY KEY,
    house TEXT NOT NULL UNIQUE,
    colour TEXT NOT NULL DEFAULT ''
);

-- Events
CREATE TABLE IF NOT EXISTS events (
    event_id SERIAL PRIMARY KEY,
    event TEXT NOT NULL UNIQUE,
    event_date TEXT
);

-- Arrangements (results)
CREATE TABLE IF NOT EXISTS arrangement (
    placing INTEGER NOT NULL CHECK (placing > 0),
    event_id INTEGER NOT NULL REFERENCES events(event_id),
    house_id INTEGER NOT NULL REFERENCES house(house_id),
    points INTEGER NOT NULL,
    UNIQUE (event_id, house_id, placing)
);

CREATE INDEX IF NOT EXISTS idx_arrangement_house_id ON arrangement(house_id);
`
