// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pointsplus/chart"
	"github.com/danielhkuo/pointsplus/middleware"
	"github.com/danielhkuo/pointsplus/store"
)

type ResultsHandler struct {
	store *store.Store
}

func NewResultsHandler(db *sql.DB) *ResultsHandler {
	return &ResultsHandler{store: store.New(db)}
}

// Submit handles POST /submit
// Fields: event_name, event_date, num_places, house_{i}, points_{i}
func (h *ResultsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sub, err := parseSubmission(r)
	if err != nil {
		slog.Warn("invalid submission", "error", err, "request_id", middleware.RequestID(r.Context()))
		http.Error(w, "All fields are required.", http.StatusBadRequest)
		return
	}

	n, err := h.store.SubmitResults(r.Context(), sub)
	if errors.Is(err, store.ErrHouseNotFound) {
		logFailure(r, "submit results", http.StatusBadRequest, err)
		http.Error(w, msgHouseNotFound, http.StatusBadRequest)
		return
	}
	if err != nil {
		plainError(w, r, "submit results", err)
		return
	}

	slog.Info("results submitted", "event", sub.EventName, "placings", n)
	http.Redirect(w, r, "/graph", http.StatusSeeOther)
}

// DeleteResult handles POST /results/delete
func (h *ResultsHandler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	key, err := parseResultKey(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteResult(r.Context(), key); err != nil {
		plainError(w, r, "delete result", err)
		return
	}

	slog.Info("result deleted", "house", key.House, "event", key.Event, "placing", int(key.Placing))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// ChartData handles GET /data/chart-data
// Returns [{house, colour, event, event_date, points}] summed per house and event.
func (h *ResultsHandler) ChartData(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ChartData(r.Context())
	if err != nil {
		jsonError(w, r, "chart data", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, rows)
}

// Chart handles GET /data/chart
// Returns the zero-filled houses × events matrix and the standings.
func (h *ResultsHandler) Chart(w http.ResponseWriter, r *http.Request) {
	c, err := loadChart(r.Context(), h.store)
	if err != nil {
		jsonError(w, r, "chart data", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, c)
}

// loadChart builds the matrix over every registered house and event,
// including those without any result yet.
func loadChart(ctx context.Context, st *store.Store) (chart.Chart, error) {
	houses, err := st.ListHouses(ctx)
	if err != nil {
		return chart.Chart{}, err
	}
	events, err := st.ListEvents(ctx)
	if err != nil {
		return chart.Chart{}, err
	}
	rows, err := st.ChartData(ctx)
	if err != nil {
		return chart.Chart{}, err
	}
	return chart.Build(houses, events, rows), nil
}
