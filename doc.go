// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the PointsPlus server.

PointsPlus records house points for school events. Staff register houses
and events, enter each event's placings, and everyone watches the running
totals on a chart.

# Starting the Server

With no configuration the server listens on port 5000 and keeps its data
in PointsPlus.db:

	go run .

Or with flags:

	go run . serve -p 8080 -d ./points.db

PostgreSQL is supported as well:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Commands

  - serve (default): create the schema and serve HTTP until interrupted
  - reset --yes: delete every row from every table

# Configuration

Settings come from flags, then the environment, then an optional .env file:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): SQLite file path or PostgreSQL URL (default: PointsPlus.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - LOG_LEVEL (--log-level): debug, info, warn or error
  - LOG_FORMAT (--log-format): text or json

# Architecture

  - handlers: HTTP request handlers (pages, admin, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, request IDs, metrics, JSON helpers
  - store: Data access, transactions and domain errors
  - chart: Houses × events matrix and standings
  - views: Embedded templates and static assets
  - models: Domain and request/response types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
