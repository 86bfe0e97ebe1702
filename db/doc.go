// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the storage handle and creates the schema.

# Connecting

Open picks the driver from the configuration (modernc.org/sqlite or
github.com/lib/pq) and pings the database:

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

SQLite file paths get foreign_keys and busy_timeout pragmas and the pool is
limited to a single connection.

# Schema Creation

CreateSchema initializes all required tables for the given dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - school: single row (school_id = 1) holding the school name
  - house: unique house name and display colour
  - events: unique event name and optional date
  - arrangement: placing and points of one house at one event

# Relationships

	house  1──* arrangement
	events 1──* arrangement

Foreign keys are declared without ON DELETE CASCADE. Dependents are removed
explicitly by the store before their parent.

# Constraints

  - house.house, events.event: UNIQUE
  - arrangement (event_id, house_id, placing): UNIQUE
  - arrangement.placing > 0
*/
package db
