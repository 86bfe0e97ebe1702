// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ResolveOrCreateEvent returns the id of the named event, creating it when
// absent. A non-blank date is stored on create and overwrites on lookup.
func (s *Store) ResolveOrCreateEvent(ctx context.Context, name, date string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, validationError("event name is required")
	}
	if err := validateDate(date); err != nil {
		return 0, err
	}
	return resolveOrCreateEvent(ctx, s.db, name, date)
}

// ResolveHouse returns the id of the named house. Houses are only created
// by admin configuration, never here.
func (s *Store) ResolveHouse(ctx context.Context, name string) (int64, error) {
	return resolveHouse(ctx, s.db, name)
}

// ResolveEvent returns the id of the named event without creating it.
func (s *Store) ResolveEvent(ctx context.Context, name string) (int64, error) {
	return resolveEvent(ctx, s.db, name)
}

func resolveOrCreateEvent(ctx context.Context, q querier, name, date string) (int64, error) {
	var eventID int64
	err := q.QueryRowContext(ctx, "SELECT event_id FROM events WHERE event = $1", name).Scan(&eventID)
	if errors.Is(err, sql.ErrNoRows) {
		err = q.QueryRowContext(ctx, `
			INSERT INTO events (event, event_date)
			VALUES ($1, $2)
			ON CONFLICT (event) DO NOTHING
			RETURNING event_id
		`, name, nullString(date)).Scan(&eventID)
		if err == nil {
			return eventID, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, dbError("insert event", err)
		}
		// Another writer created it between the select and the insert.
		err = q.QueryRowContext(ctx, "SELECT event_id FROM events WHERE event = $1", name).Scan(&eventID)
	}
	if err != nil {
		return 0, dbError("find event", err)
	}

	if d := nullString(date); d.Valid {
		_, err = q.ExecContext(ctx, "UPDATE events SET event_date = $1 WHERE event_id = $2", d, eventID)
		if err != nil {
			return 0, dbError("update event date", err)
		}
	}

	return eventID, nil
}

func resolveHouse(ctx context.Context, q querier, name string) (int64, error) {
	var houseID int64
	err := q.QueryRowContext(ctx, "SELECT house_id FROM house WHERE house = $1", name).Scan(&houseID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrHouseNotFound, name)
	}
	if err != nil {
		return 0, dbError("find house", err)
	}
	return houseID, nil
}

func resolveEvent(ctx context.Context, q querier, name string) (int64, error) {
	var eventID int64
	err := q.QueryRowContext(ctx, "SELECT event_id FROM events WHERE event = $1", name).Scan(&eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrEventNotFound, name)
	}
	if err != nil {
		return 0, dbError("find event", err)
	}
	return eventID, nil
}

// arrangementExists reports whether the (event, house, placing) key is taken
func arrangementExists(ctx context.Context, q querier, eventID, houseID int64, placing int) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM arrangement
		WHERE event_id = $1 AND house_id = $2 AND placing = $3
	`, eventID, houseID, placing).Scan(&n)
	if err != nil {
		return false, dbError("check duplicate result", err)
	}
	return n > 0, nil
}
