// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/danielhkuo/pointsplus/models"
)

// ApplyConfiguration performs the bulk admin upsert in one transaction.
// The last non-blank school name wins. Events and houses are inserted when
// absent; an event date is set when given and an empty house colour is
// backfilled. Blank names are skipped.
func (s *Store) ApplyConfiguration(ctx context.Context, cfg models.Configuration) error {
	for _, ev := range cfg.Events {
		if err := validateDate(ev.Date); err != nil {
			return err
		}
	}

	school := ""
	for _, name := range cfg.SchoolNames {
		if strings.TrimSpace(name) != "" {
			school = strings.TrimSpace(name)
		}
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if school != "" {
			if err := setSchoolName(ctx, tx, school); err != nil {
				return err
			}
		}

		for _, ev := range cfg.Events {
			name := strings.TrimSpace(ev.Name)
			if name == "" {
				continue
			}
			if _, err := resolveOrCreateEvent(ctx, tx, name, ev.Date); err != nil {
				return err
			}
		}

		for _, h := range cfg.Houses {
			name := strings.TrimSpace(h.Name)
			if name == "" {
				continue
			}
			if err := upsertHouse(ctx, tx, name, strings.TrimSpace(h.Colour)); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetSchoolName replaces the singleton school row.
func (s *Store) SetSchoolName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return validationError("school name is required")
	}
	return setSchoolName(ctx, s.db, name)
}

func setSchoolName(ctx context.Context, q querier, name string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO school (school_id, name)
		VALUES (1, $1)
		ON CONFLICT (school_id) DO UPDATE SET name = excluded.name
	`, name)
	if err != nil {
		return dbError("set school name", err)
	}
	return nil
}

// SchoolName returns the configured school name, or "" when unset.
func (s *Store) SchoolName(ctx context.Context) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, "SELECT name FROM school WHERE school_id = 1").Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", dbError("find school name", err)
	}
	return name, nil
}

func upsertHouse(ctx context.Context, q querier, name, colour string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO house (house, colour)
		VALUES ($1, $2)
		ON CONFLICT (house) DO NOTHING
	`, name, colour)
	if err != nil {
		return dbError("insert house", err)
	}

	if colour == "" {
		return nil
	}
	_, err = q.ExecContext(ctx, "UPDATE house SET colour = $1 WHERE house = $2 AND colour = ''", colour, name)
	if err != nil {
		return dbError("backfill house colour", err)
	}
	return nil
}

// ListEvents returns events ordered by date then name. Undated events come first.
func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT event_id, event, COALESCE(event_date, '')
		FROM events
		ORDER BY COALESCE(event_date, ''), event
	`)
	if err != nil {
		return nil, dbError("list events", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var ev models.Event
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.Date); err != nil {
			return nil, dbError("scan event", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list events", err)
	}
	return events, nil
}

// ListHouses returns houses ordered by name.
func (s *Store) ListHouses(ctx context.Context) ([]models.House, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT house_id, house, colour FROM house ORDER BY house")
	if err != nil {
		return nil, dbError("list houses", err)
	}
	defer rows.Close()

	houses := []models.House{}
	for rows.Next() {
		var h models.House
		if err := rows.Scan(&h.ID, &h.Name, &h.Colour); err != nil {
			return nil, dbError("scan house", err)
		}
		houses = append(houses, h)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list houses", err)
	}
	return houses, nil
}
