// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for PointsPlus.

# Handler Types

Each handler is a struct over a store built from the injected database:

  - PageHandler: HTML pages (landing, graph, results, form, admin, 404)
  - AdminHandler: Configuration, deletions, result edits and reset
  - ResultsHandler: Result submission, deletion and the chart feeds

Handlers are created via constructor functions that accept *sql.DB:

	resultsHandler := handlers.NewResultsHandler(db)
	pageHandler := handlers.NewPageHandler(db, renderer)

# Forms

Form endpoints answer with 303 See Other on success and a plain text body
on failure:

	POST /submit               → Submit (redirects to /graph)
	POST /admin                → Configure
	POST /admin/delete-event   → DeleteEvent
	POST /admin/delete-house   → DeleteHouse
	POST /results/delete       → DeleteResult
	POST /admin/clear-db       → ClearDB

POST /admin accepts its arrays as either name or name[].

# JSON

	POST /admin/update-result → UpdateResult ({success, message} or {error, message})
	GET /data/chart-data      → ChartData (summed points per house and event)
	GET /data/chart           → Chart (every house × every event, zero-filled, with standings)

# Errors

Store errors map to statuses: validation 400, not found 404, conflict 409,
anything else 500. An unknown house on submission is a 400 asking the user
to add it in Admin.
*/
package handlers
