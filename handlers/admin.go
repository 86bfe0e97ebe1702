// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pointsplus/middleware"
	"github.com/danielhkuo/pointsplus/models"
	"github.com/danielhkuo/pointsplus/store"
)

type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(db *sql.DB) *AdminHandler {
	return &AdminHandler{store: store.New(db)}
}

// Configure handles POST /admin
// Bulk upserts school, events and houses from parallel form arrays.
func (h *AdminHandler) Configure(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	cfg := parseConfiguration(r)
	if err := h.store.ApplyConfiguration(r.Context(), cfg); err != nil {
		plainError(w, r, "apply configuration", err)
		return
	}

	slog.Info("configuration applied",
		"events", len(cfg.Events),
		"houses", len(cfg.Houses),
		"request_id", middleware.RequestID(r.Context()))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// DeleteEvent handles POST /admin/delete-event
func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "event_id")
	if err != nil {
		http.Error(w, "Event ID is required", http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteEvent(r.Context(), id); err != nil {
		plainError(w, r, "delete event", err)
		return
	}

	slog.Info("event deleted", "event_id", id)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// DeleteHouse handles POST /admin/delete-house
func (h *AdminHandler) DeleteHouse(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "house_id")
	if err != nil {
		http.Error(w, "House ID is required", http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteHouse(r.Context(), id); err != nil {
		plainError(w, r, "delete house", err)
		return
	}

	slog.Info("house deleted", "house_id", id)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// UpdateResult handles POST /admin/update-result
// Body: {original: {house, event, placing}, updated: {house, event, placing, points}}
func (h *AdminHandler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Original == nil || req.Updated == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Original and updated data required")
		return
	}

	if err := h.store.UpdateResult(r.Context(), *req.Original, *req.Updated); err != nil {
		jsonError(w, r, "update result", err)
		return
	}

	slog.Info("result updated",
		"original", fmt.Sprintf("%s/%s/%d", req.Original.House, req.Original.Event, req.Original.Placing),
		"updated", fmt.Sprintf("%s/%s/%d", req.Updated.House, req.Updated.Event, req.Updated.Placing))
	middleware.JSONResponse(w, http.StatusOK, models.UpdateResultResponse{
		Success: true,
		Message: "Result updated successfully",
	})
}

// ClearDB handles POST /admin/clear-db
func (h *AdminHandler) ClearDB(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reset(r.Context()); err != nil {
		plainError(w, r, "reset", err)
		return
	}

	slog.Warn("database cleared", "remote", middleware.GetClientIP(r))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
