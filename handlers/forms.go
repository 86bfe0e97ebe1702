// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/pointsplus/models"
)

// formValues returns all values posted under name, accepting both the plain
// and the "name[]" array spelling.
func formValues(r *http.Request, name string) []string {
	values := append([]string{}, r.PostForm[name]...)
	return append(values, r.PostForm[name+"[]"]...)
}

// formInt parses a required positive integer field
func formInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.PostFormValue(name))
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return n, nil
}

// parseConfiguration pairs the parallel admin arrays by index. A missing
// date or colour counts as blank.
func parseConfiguration(r *http.Request) models.Configuration {
	cfg := models.Configuration{SchoolNames: formValues(r, "school_name")}

	dates := formValues(r, "event_date")
	for i, name := range formValues(r, "event_name") {
		ev := models.EventInput{Name: name}
		if i < len(dates) {
			ev.Date = dates[i]
		}
		cfg.Events = append(cfg.Events, ev)
	}

	colours := formValues(r, "house_color")
	for i, name := range formValues(r, "house_name") {
		h := models.HouseInput{Name: name}
		if i < len(colours) {
			h.Colour = colours[i]
		}
		cfg.Houses = append(cfg.Houses, h)
	}

	return cfg
}

// parseSubmission reads event_name, event_date, num_places and the
// house_{i}/points_{i} pairs for i in 1..num_places.
func parseSubmission(r *http.Request) (models.Submission, error) {
	sub := models.Submission{
		EventName: strings.TrimSpace(r.PostFormValue("event_name")),
		EventDate: strings.TrimSpace(r.PostFormValue("event_date")),
	}
	if sub.EventName == "" {
		return sub, fmt.Errorf("event_name is required")
	}

	n, err := formInt(r, "num_places")
	if err != nil {
		return sub, err
	}

	for i := 1; i <= n; i++ {
		house := strings.TrimSpace(r.PostFormValue(fmt.Sprintf("house_%d", i)))
		rawPoints := strings.TrimSpace(r.PostFormValue(fmt.Sprintf("points_%d", i)))
		if house == "" || rawPoints == "" {
			return sub, fmt.Errorf("house and points are required for placing %d", i)
		}
		points, err := strconv.Atoi(rawPoints)
		if err != nil {
			return sub, fmt.Errorf("points for placing %d must be an integer", i)
		}
		sub.Placings = append(sub.Placings, models.Placing{House: house, Points: points})
	}

	return sub, nil
}

func parseResultKey(r *http.Request) (models.ResultKey, error) {
	key := models.ResultKey{
		House: strings.TrimSpace(r.PostFormValue("house")),
		Event: strings.TrimSpace(r.PostFormValue("event")),
	}
	if key.House == "" || key.Event == "" {
		return key, fmt.Errorf("house, event and placing are required")
	}
	placing, err := formInt(r, "placing")
	if err != nil {
		return key, err
	}
	key.Placing = models.FlexInt(placing)
	return key, nil
}

func parseID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PostFormValue(name))
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return id, nil
}
