// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/pointsplus/middleware"
	"github.com/danielhkuo/pointsplus/store"
)

const msgHouseNotFound = "House not found. Please add it in Admin."

// statusFor maps a store error to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageFor returns the client-facing text for err. Storage failures are
// never described to the client.
func messageFor(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return "Database Error"
	}
	msg := err.Error()
	for _, sentinel := range []error{store.ErrValidation, store.ErrConflict} {
		msg = strings.TrimPrefix(msg, sentinel.Error()+": ")
	}
	return msg
}

// plainError replies with a text body, used by the HTML form endpoints
func plainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	logFailure(r, op, status, err)
	http.Error(w, messageFor(err, status), status)
}

// jsonError replies with {error, message}, used by the JSON endpoints
func jsonError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	logFailure(r, op, status, err)
	middleware.ErrorResponse(w, status, messageFor(err, status))
}

func logFailure(r *http.Request, op string, status int, err error) {
	attrs := []any{"op", op, "error", err, "request_id", middleware.RequestID(r.Context())}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", attrs...)
		return
	}
	slog.Warn("request rejected", attrs...)
}
