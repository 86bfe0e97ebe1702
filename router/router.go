// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/pointsplus/handlers"
	"github.com/danielhkuo/pointsplus/middleware"
	"github.com/danielhkuo/pointsplus/views"
)

func NewRouter(db *sql.DB) (*http.ServeMux, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	// Each router owns its registry so tests can build several
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	mux := http.NewServeMux()
	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(metrics.Instrument(pattern, h)))
	}

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(db, renderer)
	adminHandler := handlers.NewAdminHandler(db)
	resultsHandler := handlers.NewResultsHandler(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.HTTPErrorOnError,
	}))
	mux.Handle("GET /static/", views.Static())

	// Pages
	handle("GET /{$}", pageHandler.Home)
	handle("GET /graph", pageHandler.Graph)
	handle("GET /results", pageHandler.Results)
	handle("GET /form", pageHandler.Form)
	handle("GET /admin", pageHandler.Admin)

	// Chart feeds
	handle("GET /data/chart-data", resultsHandler.ChartData)
	handle("GET /data/chart", resultsHandler.Chart)

	// Result entry
	handle("POST /submit", resultsHandler.Submit)
	handle("POST /results/delete", resultsHandler.DeleteResult)

	// Administration
	handle("POST /admin", adminHandler.Configure)
	handle("POST /admin/delete-event", adminHandler.DeleteEvent)
	handle("POST /admin/delete-house", adminHandler.DeleteHouse)
	handle("POST /admin/update-result", adminHandler.UpdateResult)
	handle("POST /admin/clear-db", adminHandler.ClearDB)

	// Anything unmatched
	handle("/", pageHandler.NotFound)

	return mux, nil
}
