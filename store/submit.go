// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/pointsplus/models"
)

// SubmitResults records one arrangement per placing of sub, in order.
// The event is resolved or created first. The first unknown house,
// missing field or duplicate key aborts the submission and nothing it
// wrote is kept. Returns the number of rows inserted.
func (s *Store) SubmitResults(ctx context.Context, sub models.Submission) (int, error) {
	if strings.TrimSpace(sub.EventName) == "" {
		return 0, validationError("event name is required")
	}
	if len(sub.Placings) == 0 {
		return 0, validationError("number of places must be a positive integer")
	}
	if err := validateDate(sub.EventDate); err != nil {
		return 0, err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		eventID, err := resolveOrCreateEvent(ctx, tx, sub.EventName, sub.EventDate)
		if err != nil {
			return err
		}

		for i, p := range sub.Placings {
			placing := i + 1
			if strings.TrimSpace(p.House) == "" {
				return validationError("house for placing %d is required", placing)
			}

			houseID, err := resolveHouse(ctx, tx, p.House)
			if err != nil {
				return fmt.Errorf("placing %d: %w", placing, err)
			}

			exists, err := arrangementExists(ctx, tx, eventID, houseID, placing)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%w: %s already holds placing %d in %s", ErrConflict, p.House, placing, sub.EventName)
			}

			_, err = tx.ExecContext(ctx, `
				INSERT INTO arrangement (placing, event_id, house_id, points)
				VALUES ($1, $2, $3, $4)
			`, placing, eventID, houseID, p.Points)
			if err != nil {
				return dbError("insert arrangement", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(sub.Placings), nil
}
