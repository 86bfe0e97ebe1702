// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pointsplus/chart"
	"github.com/danielhkuo/pointsplus/middleware"
	"github.com/danielhkuo/pointsplus/models"
	"github.com/danielhkuo/pointsplus/testutil"
)

func newTestRouter(t *testing.T) (*http.ServeMux, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	mux, err := NewRouter(db)
	require.NoError(t, err)
	return mux, db
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := newTestRouter(t)

	// Form routes with an empty body reject with 400; everything else answers 200
	testCases := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{"GET", "/", http.StatusOK},
		{"GET", "/graph", http.StatusOK},
		{"GET", "/results", http.StatusOK},
		{"GET", "/form", http.StatusOK},
		{"GET", "/admin", http.StatusOK},
		{"GET", "/data/chart-data", http.StatusOK},
		{"GET", "/data/chart", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
		{"GET", "/static/css/main.css", http.StatusOK},
		{"GET", "/static/js/chart.js", http.StatusOK},
		{"POST", "/submit", http.StatusBadRequest},
		{"POST", "/results/delete", http.StatusBadRequest},
		{"POST", "/admin/delete-event", http.StatusBadRequest},
		{"POST", "/admin/delete-house", http.StatusBadRequest},
		{"POST", "/admin/update-result", http.StatusBadRequest},
		{"POST", "/admin", http.StatusSeeOther},
		{"POST", "/admin/clear-db", http.StatusSeeOther},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := testutil.MakeFormRequest(tc.method, tc.path, url.Values{})
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}
}

func TestNotFoundPage(t *testing.T) {
	mux, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/nope"},
		{"GET", "/data"},
		{"GET", "/admin/extra"},
		{"POST", "/graph"}, // only GET is defined; the catch-all answers
		{"DELETE", "/admin"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusNotFound)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	mux, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/graph", nil))

	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/graph", nil))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	assert.Contains(t, body, `pointsplus_http_requests_total{method="GET",route="GET /graph",status_code="200"} 1`)
	assert.Contains(t, body, "pointsplus_http_request_duration_seconds")
	assert.Contains(t, body, "go_goroutines")
}

func TestChartIncludesUnscoredHousesAndEvents(t *testing.T) {
	mux, db := newTestRouter(t)
	h1 := testutil.SeedHouse(t, db, "H1", "#f00")
	testutil.SeedHouse(t, db, "H2", "#00f")
	e1 := testutil.SeedEvent(t, db, "E1", "2024-01-01")
	testutil.SeedEvent(t, db, "E2", "2024-01-02")
	testutil.SeedResult(t, db, e1, h1, 1, 10)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/data/chart", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var c chart.Chart
	testutil.AssertJSON(t, w, &c)
	assert.Equal(t, []string{"H1", "H2"}, c.Houses)
	require.Len(t, c.Datasets, 2)
	assert.Equal(t, []int{10, 0}, c.Datasets[0].Points)
	assert.Equal(t, []int{0, 0}, c.Datasets[1].Points)
	require.Len(t, c.Standings, 2)
	assert.Equal(t, "H2", c.Standings[1].House)
	assert.Equal(t, 0, c.Standings[1].Points)
}

// TestRelayScenario drives the whole flow over HTTP: configure two houses,
// submit a two-place event, then read it back from the chart feed.
func TestRelayScenario(t *testing.T) {
	mux, db := newTestRouter(t)

	// Step 1: register the houses
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeFormRequest("POST", "/admin", url.Values{
		"house_name[]":  {"Red", "Blue"},
		"house_color[]": {"#f00", "#00f"},
	}))
	testutil.AssertStatus(t, w, http.StatusSeeOther)

	// Step 2: submit the relay
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeFormRequest("POST", "/submit", url.Values{
		"event_name": {"Relay"},
		"event_date": {"2024-05-01"},
		"num_places": {"2"},
		"house_1":    {"Red"},
		"points_1":   {"10"},
		"house_2":    {"Blue"},
		"points_2":   {"5"},
	}))
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, "/graph", w.Header().Get("Location"))

	// Step 3: exactly two arrangement rows
	rows, err := db.Query(`
		SELECT a.placing, e.event, h.house, a.points
		FROM arrangement a
		JOIN events e ON a.event_id = e.event_id
		JOIN house h ON a.house_id = h.house_id
		ORDER BY a.placing
	`)
	require.NoError(t, err)
	defer rows.Close()

	type row struct {
		placing int
		event   string
		house   string
		points  int
	}
	var got []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.placing, &r.event, &r.house, &r.points))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []row{{1, "Relay", "Red", 10}, {2, "Relay", "Blue", 5}}, got)

	// Step 4: the chart feed reports both
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/data/chart-data", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var feed []models.ChartRow
	testutil.AssertJSON(t, w, &feed)
	assert.ElementsMatch(t, []models.ChartRow{
		{House: "Red", Colour: "#f00", Event: "Relay", EventDate: "2024-05-01", Points: 10},
		{House: "Blue", Colour: "#00f", Event: "Relay", EventDate: "2024-05-01", Points: 5},
	}, feed)

	// Step 5: the results page shows the standings
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/results", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	assert.Less(t, strings.Index(body, "Red"), strings.Index(body, "Blue"), "Red leads the standings")

	// Step 6: an edit, then a reset
	six := models.FlexInt(6)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/admin/update-result", models.UpdateResultRequest{
		Original: &models.ResultKey{House: "Blue", Event: "Relay", Placing: 2},
		Updated:  &models.ResultUpdate{House: "Blue", Event: "Relay", Placing: 2, Points: &six},
	}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("POST", "/admin/clear-db", nil))
	testutil.AssertStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, 0, testutil.CountRows(t, db, "house"))
}
