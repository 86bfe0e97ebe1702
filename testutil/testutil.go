// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pointsplus/cliparse"
	"github.com/danielhkuo/pointsplus/db"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig(t)
	conn, err := db.Open(cfg)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(conn, cfg.DatabaseType), "Failed to create schema")

	return conn
}

// GetTestConfig returns a standard test configuration backed by a temp file
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  filepath.Join(t.TempDir(), "PointsPlus.db"),
		DatabaseType: cliparse.DatabaseSQLite,
		LogLevel:     "info",
		LogFormat:    cliparse.LogFormatText,
	}
}

// SeedHouse inserts a house and returns its ID
func SeedHouse(t *testing.T, conn *sql.DB, name, colour string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO house (house, colour) VALUES ($1, $2) RETURNING house_id
	`, name, colour).Scan(&id)
	require.NoError(t, err, "Failed to create test house")

	return id
}

// SeedEvent inserts an event and returns its ID. An empty date is stored as NULL.
func SeedEvent(t *testing.T, conn *sql.DB, name, date string) int64 {
	t.Helper()

	var eventDate any
	if date != "" {
		eventDate = date
	}

	var id int64
	err := conn.QueryRow(`
		INSERT INTO events (event, event_date) VALUES ($1, $2) RETURNING event_id
	`, name, eventDate).Scan(&id)
	require.NoError(t, err, "Failed to create test event")

	return id
}

// SeedResult inserts an arrangement row
func SeedResult(t *testing.T, conn *sql.DB, eventID, houseID int64, placing, points int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO arrangement (placing, event_id, house_id, points)
		VALUES ($1, $2, $3, $4)
	`, placing, eventID, houseID, points)
	require.NoError(t, err, "Failed to create test result")
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates an HTTP test request with a urlencoded form body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
