package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DefaultColour is used for houses without a display colour
const DefaultColour = "#999"

// DateLayout is the storage format of event dates
const DateLayout = "2006-01-02"

// Domain types

type House struct {
	ID     int64  `json:"house_id"`
	Name   string `json:"house"`
	Colour string `json:"colour"`
}

// Date is empty when the event has no date
type Event struct {
	ID   int64  `json:"event_id"`
	Name string `json:"event"`
	Date string `json:"event_date"`
}

// Result is an arrangement joined with its house and event names
type Result struct {
	House     string `json:"house"`
	Event     string `json:"event"`
	EventDate string `json:"event_date"`
	Placing   int    `json:"placing"`
	Points    int    `json:"points"`
}

// ChartRow is the total points of one house at one event
type ChartRow struct {
	House     string `json:"house"`
	Colour    string `json:"colour"`
	Event     string `json:"event"`
	EventDate string `json:"event_date"`
	Points    int    `json:"points"`
}

// Write types

// Placing i of a submission is Placings[i-1]
type Submission struct {
	EventName string
	EventDate string
	Placings  []Placing
}

type Placing struct {
	House  string
	Points int
}

// ResultKey identifies one arrangement by names
type ResultKey struct {
	House   string  `json:"house"`
	Event   string  `json:"event"`
	Placing FlexInt `json:"placing"`
}

// Points is nil when the request omitted it
type ResultUpdate struct {
	House   string   `json:"house"`
	Event   string   `json:"event"`
	Placing FlexInt  `json:"placing"`
	Points  *FlexInt `json:"points"`
}

// Configuration is the bulk admin upsert
type Configuration struct {
	SchoolNames []string
	Events      []EventInput
	Houses      []HouseInput
}

type EventInput struct {
	Name string
	Date string
}

type HouseInput struct {
	Name   string
	Colour string
}

// Request types

type UpdateResultRequest struct {
	Original *ResultKey    `json:"original"`
	Updated  *ResultUpdate `json:"updated"`
}

// Response types

type UpdateResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// FlexInt decodes from a JSON number or a numeric string. The admin page
// sends table cell text, so "3" and 3 are both valid.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*n = FlexInt(v)
	return nil
}
