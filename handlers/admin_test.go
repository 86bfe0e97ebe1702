// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pointsplus/models"
	"github.com/danielhkuo/pointsplus/testutil"
)

func TestConfigure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewAdminHandler(db)

	form := url.Values{
		"school_name":  {"Hillcrest"},
		"event_name[]": {"Relay", "Long Jump", ""},
		"event_date[]": {"2024-05-01", "", ""},
		"house_name":   {"Red", "Blue"},
		"house_color":  {"#f00"},
	}
	w := httptest.NewRecorder()
	handler.Configure(w, testutil.MakeFormRequest("POST", "/admin", form))

	testutil.AssertStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	var school string
	require.NoError(t, db.QueryRow("SELECT name FROM school").Scan(&school))
	assert.Equal(t, "Hillcrest", school)
	assert.Equal(t, 2, testutil.CountRows(t, db, "events"))

	var blue string
	require.NoError(t, db.QueryRow("SELECT colour FROM house WHERE house = 'Blue'").Scan(&blue))
	assert.Equal(t, "", blue, "a missing colour stays blank")

	t.Run("resubmitting is idempotent and replaces the school", func(t *testing.T) {
		form := url.Values{
			"school_name": {"Hillcrest College"},
			"house_name":  {"Red", "Blue"},
			"house_color": {"#000", "#00f"},
		}
		w := httptest.NewRecorder()
		handler.Configure(w, testutil.MakeFormRequest("POST", "/admin", form))

		testutil.AssertStatus(t, w, http.StatusSeeOther)
		assert.Equal(t, 1, testutil.CountRows(t, db, "school"))
		assert.Equal(t, 2, testutil.CountRows(t, db, "house"))

		colours := map[string]string{}
		rows, err := db.Query("SELECT house, colour FROM house")
		require.NoError(t, err)
		defer rows.Close()
		for rows.Next() {
			var name, colour string
			require.NoError(t, rows.Scan(&name, &colour))
			colours[name] = colour
		}
		assert.Equal(t, "#f00", colours["Red"], "a stored colour is kept")
		assert.Equal(t, "#00f", colours["Blue"], "a blank colour is backfilled")
	})

	t.Run("invalid event date", func(t *testing.T) {
		form := url.Values{"event_name": {"Shot Put"}, "event_date": {"tomorrow"}}
		w := httptest.NewRecorder()
		handler.Configure(w, testutil.MakeFormRequest("POST", "/admin", form))

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		assert.Equal(t, 2, testutil.CountRows(t, db, "events"))
	})
}

func TestDeleteEventAndHouse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	red := testutil.SeedHouse(t, db, "Red", "#f00")
	blue := testutil.SeedHouse(t, db, "Blue", "#00f")
	relay := testutil.SeedEvent(t, db, "Relay", "")
	jump := testutil.SeedEvent(t, db, "Long Jump", "")
	testutil.SeedResult(t, db, relay, red, 1, 10)
	testutil.SeedResult(t, db, relay, blue, 2, 5)
	testutil.SeedResult(t, db, jump, blue, 1, 10)
	handler := NewAdminHandler(db)

	t.Run("missing id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.DeleteEvent(w, testutil.MakeFormRequest("POST", "/admin/delete-event", url.Values{}))
		testutil.AssertStatus(t, w, http.StatusBadRequest)
		assert.Equal(t, "Event ID is required\n", w.Body.String())

		w = httptest.NewRecorder()
		handler.DeleteHouse(w, testutil.MakeFormRequest("POST", "/admin/delete-house", url.Values{"house_id": {"abc"}}))
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.DeleteEvent(w, testutil.MakeFormRequest("POST", "/admin/delete-event", url.Values{"event_id": {"999"}}))
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("delete event removes its results", func(t *testing.T) {
		w := httptest.NewRecorder()
		form := url.Values{"event_id": {strconv.FormatInt(relay, 10)}}
		handler.DeleteEvent(w, testutil.MakeFormRequest("POST", "/admin/delete-event", form))

		testutil.AssertStatus(t, w, http.StatusSeeOther)
		assert.Equal(t, 1, testutil.CountRows(t, db, "events"))
		assert.Equal(t, 1, testutil.CountRows(t, db, "arrangement"))
	})

	t.Run("delete house removes its results", func(t *testing.T) {
		w := httptest.NewRecorder()
		form := url.Values{"house_id": {strconv.FormatInt(blue, 10)}}
		handler.DeleteHouse(w, testutil.MakeFormRequest("POST", "/admin/delete-house", form))

		testutil.AssertStatus(t, w, http.StatusSeeOther)
		assert.Equal(t, 1, testutil.CountRows(t, db, "house"))
		assert.Equal(t, 0, testutil.CountRows(t, db, "arrangement"))
	})
}

func TestUpdateResult(t *testing.T) {
	setup := func(t *testing.T) (*AdminHandler, *sql.DB) {
		db := testutil.SetupTestDB(t)
		red := testutil.SeedHouse(t, db, "Red", "#f00")
		blue := testutil.SeedHouse(t, db, "Blue", "#00f")
		relay := testutil.SeedEvent(t, db, "Relay", "")
		testutil.SeedResult(t, db, relay, red, 1, 10)
		testutil.SeedResult(t, db, relay, blue, 2, 5)
		return NewAdminHandler(db), db
	}

	tests := []struct {
		name            string
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "update points",
			body:            `{"original":{"house":"Red","event":"Relay","placing":1},"updated":{"house":"Red","event":"Relay","placing":1,"points":12}}`,
			expectedStatus:  http.StatusOK,
			expectedMessage: "Result updated successfully",
		},
		{
			name:            "string fields from the admin table",
			body:            `{"original":{"house":"Red","event":"Relay","placing":"1"},"updated":{"house":"Red","event":"Relay","placing":"3","points":"8"}}`,
			expectedStatus:  http.StatusOK,
			expectedMessage: "Result updated successfully",
		},
		{
			name:            "missing sections",
			body:            `{"original":{"house":"Red","event":"Relay","placing":1}}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Original and updated data required",
		},
		{
			name:            "invalid JSON",
			body:            `{original}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid JSON",
		},
		{
			name:            "original not found",
			body:            `{"original":{"house":"Red","event":"Relay","placing":4},"updated":{"house":"Red","event":"Relay","placing":4,"points":1}}`,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "original record",
		},
		{
			name:            "missing points",
			body:            `{"original":{"house":"Red","event":"Relay","placing":1},"updated":{"house":"Red","event":"Relay","placing":1}}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "points are required",
		},
		{
			name:            "unknown updated house",
			body:            `{"original":{"house":"Red","event":"Relay","placing":1},"updated":{"house":"Green","event":"Relay","placing":1,"points":1}}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "house not found: Green",
		},
		{
			name:            "unknown updated event",
			body:            `{"original":{"house":"Red","event":"Relay","placing":1},"updated":{"house":"Red","event":"Sprint","placing":1,"points":1}}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "event not found: Sprint",
		},
		{
			name:            "collides with another result",
			body:            `{"original":{"house":"Red","event":"Relay","placing":1},"updated":{"house":"Blue","event":"Relay","placing":2,"points":1}}`,
			expectedStatus:  http.StatusConflict,
			expectedMessage: "a result already exists for this house/event/placing combination",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, db := setup(t)

			req := httptest.NewRequest("POST", "/admin/update-result", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			handler.UpdateResult(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK {
				var resp models.UpdateResultResponse
				testutil.AssertJSON(t, w, &resp)
				assert.True(t, resp.Success)
				assert.Equal(t, tt.expectedMessage, resp.Message)
				return
			}

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, http.StatusText(tt.expectedStatus), resp.Error)
			assert.Contains(t, resp.Message, tt.expectedMessage)
			assert.Equal(t, 2, testutil.CountRows(t, db, "arrangement"))
		})
	}
}

func TestClearDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	red := testutil.SeedHouse(t, db, "Red", "#f00")
	relay := testutil.SeedEvent(t, db, "Relay", "")
	testutil.SeedResult(t, db, relay, red, 1, 10)
	_, err := db.Exec("INSERT INTO school (school_id, name) VALUES (1, 'Hillcrest')")
	require.NoError(t, err)

	handler := NewAdminHandler(db)
	w := httptest.NewRecorder()
	handler.ClearDB(w, httptest.NewRequest("POST", "/admin/clear-db", nil))

	testutil.AssertStatus(t, w, http.StatusSeeOther)
	for _, table := range []string{"arrangement", "events", "school", "house"} {
		assert.Equal(t, 0, testutil.CountRows(t, db, table), table)
	}
}
