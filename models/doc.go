// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types.

# Domain Types

Rows read from storage:

  - House: house_id, name, display colour
  - Event: event_id, name, optional date (empty when unset)
  - Result: an arrangement joined with house and event names
  - ChartRow: total points of one house at one event

# Write Types

Inputs to the store:

  - Submission: event name/date and ordered placings
  - ResultKey: (house, event, placing) identifying one arrangement
  - ResultUpdate: new house, event, placing, points
  - Configuration: bulk school/event/house upsert

# Request/Response Types

  - UpdateResultRequest: original key and updated record
  - UpdateResultResponse: success, message
  - ErrorResponse: error, message

# Numbers From Forms

FlexInt accepts both 3 and "3" so the admin page can post cell text.

# Constants

	DefaultColour = "#999"
	DateLayout    = "2006-01-02"
*/
package models
