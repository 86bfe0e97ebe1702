// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pointsplus/chart"
	"github.com/danielhkuo/pointsplus/models"
)

func TestRender_AllPages(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	rows := []models.ChartRow{{House: "Red", Colour: "#f00", Event: "Relay", EventDate: "2024-05-01", Points: 10}}
	data := PageData{
		Title:      "Test",
		SchoolName: "Hillside High",
		Events:     []models.Event{{ID: 1, Name: "Relay", Date: "2024-05-01"}},
		Houses:     []models.House{{ID: 1, Name: "Red", Colour: "#f00"}},
		Results:    []models.Result{{House: "Red", Event: "Relay", EventDate: "2024-05-01", Placing: 1, Points: 10}},
		Chart:      chart.Build(nil, nil, rows),
	}

	for _, name := range pageNames {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			require.NoError(t, r.Render(w, http.StatusOK, name, data))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), "<title>Test | PointsPlus</title>")
		})
	}
}

func TestRender_Content(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, r.Render(w, http.StatusOK, PageResults, PageData{
		Title:   "Results",
		Results: []models.Result{{House: "Red", Event: "Relay", Placing: 2, Points: 5}},
	}))
	body := w.Body.String()
	assert.Contains(t, body, "2nd")
	assert.Contains(t, body, "No results recorded yet.", "empty standings message")

	w = httptest.NewRecorder()
	require.NoError(t, r.Render(w, http.StatusOK, PageAdmin, PageData{
		Title:  "Admin",
		Houses: []models.House{{ID: 7, Name: "<Blue>", Colour: "#00f"}},
	}))
	body = w.Body.String()
	assert.Contains(t, body, `name="house_id" value="7"`)
	assert.Contains(t, body, "&lt;Blue&gt;", "names are escaped")
	assert.Contains(t, body, "No events.")
}

func TestRender_StatusAndUnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, r.Render(w, http.StatusNotFound, PageNotFound, PageData{Title: "Not Found"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")

	assert.Error(t, r.Render(httptest.NewRecorder(), http.StatusOK, "missing", PageData{}))
}

func TestStatic(t *testing.T) {
	h := Static()

	for _, path := range []string{"/static/js/chart.js", "/static/js/admin.js", "/static/js/form.js", "/static/css/main.css"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Body.String())
		})
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/static/js/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 10: "10th",
		11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 101: "101st", 111: "111th",
	}
	for n, want := range tests {
		assert.Equal(t, want, Ordinal(n), "Ordinal(%d)", n)
	}
}
