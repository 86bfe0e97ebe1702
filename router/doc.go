// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for PointsPlus.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux, err := router.NewRouter(db)

Every application route is wrapped with request logging and per-route
Prometheus metrics. Each router has its own registry.

# Endpoints

Operational:

	GET /health   - Liveness, always "OK"
	GET /metrics  - Prometheus exposition
	GET /static/  - Embedded css and js

Pages:

	GET /         - Landing page
	GET /graph    - Points chart
	GET /results  - Standings and results table
	GET /form     - Result entry form
	GET /admin    - Management page

Chart feeds:

	GET /data/chart-data - Points per house and event
	GET /data/chart      - Every house × every event, zero-filled, and standings

Writes:

	POST /submit               - Record an event's placings
	POST /results/delete       - Delete one result
	POST /admin                - Upsert school, events and houses
	POST /admin/delete-event   - Delete an event and its results
	POST /admin/delete-house   - Delete a house and its results
	POST /admin/update-result  - Edit one result (JSON)
	POST /admin/clear-db       - Empty every table

Any other path renders the 404 page.
*/
package router
