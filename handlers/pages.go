// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pointsplus/middleware"
	"github.com/danielhkuo/pointsplus/store"
	"github.com/danielhkuo/pointsplus/views"
)

type PageHandler struct {
	store *store.Store
	views *views.Renderer
}

func NewPageHandler(db *sql.DB, renderer *views.Renderer) *PageHandler {
	return &PageHandler{store: store.New(db), views: renderer}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageHome, views.PageData{Title: "PointsPlus"})
}

// Graph handles GET /graph
func (h *PageHandler) Graph(w http.ResponseWriter, r *http.Request) {
	school, err := h.store.SchoolName(r.Context())
	if err != nil {
		plainError(w, r, "load school", err)
		return
	}
	h.render(w, r, http.StatusOK, views.PageGraph, views.PageData{Title: "Graph", SchoolName: school})
}

// Results handles GET /results
func (h *PageHandler) Results(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	results, err := h.store.ListResults(ctx)
	if err != nil {
		plainError(w, r, "list results", err)
		return
	}
	standings, err := loadChart(ctx, h.store)
	if err != nil {
		plainError(w, r, "load chart data", err)
		return
	}
	school, err := h.store.SchoolName(ctx)
	if err != nil {
		plainError(w, r, "load school", err)
		return
	}

	h.render(w, r, http.StatusOK, views.PageResults, views.PageData{
		Title:      "Results",
		SchoolName: school,
		Results:    results,
		Chart:      standings,
	})
}

// Form handles GET /form
func (h *PageHandler) Form(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	events, err := h.store.ListEvents(ctx)
	if err != nil {
		plainError(w, r, "list events", err)
		return
	}
	houses, err := h.store.ListHouses(ctx)
	if err != nil {
		plainError(w, r, "list houses", err)
		return
	}

	h.render(w, r, http.StatusOK, views.PageForm, views.PageData{
		Title:  "Enter Results",
		Events: events,
		Houses: houses,
	})
}

// Admin handles GET /admin
func (h *PageHandler) Admin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	events, err := h.store.ListEvents(ctx)
	if err != nil {
		plainError(w, r, "list events", err)
		return
	}
	houses, err := h.store.ListHouses(ctx)
	if err != nil {
		plainError(w, r, "list houses", err)
		return
	}
	results, err := h.store.ListResults(ctx)
	if err != nil {
		plainError(w, r, "list results", err)
		return
	}
	school, err := h.store.SchoolName(ctx)
	if err != nil {
		plainError(w, r, "load school", err)
		return
	}

	h.render(w, r, http.StatusOK, views.PageAdmin, views.PageData{
		Title:      "Admin",
		SchoolName: school,
		Events:     events,
		Houses:     houses,
		Results:    results,
	})
}

// NotFound renders the 404 page for any unmatched route
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, views.PageNotFound, views.PageData{Title: "Not Found"})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data views.PageData) {
	if err := h.views.Render(w, status, page, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err, "request_id", middleware.RequestID(r.Context()))
		http.Error(w, "Template Error", http.StatusInternalServerError)
	}
}
