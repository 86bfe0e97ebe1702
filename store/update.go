// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/pointsplus/models"
)

// UpdateResult rewrites the arrangement identified by orig.
//
// The steps run in order so each failure has its own cause: locate the
// original row (ErrNotFound), resolve the new house and event
// (ErrValidation naming the missing one), check that no other row holds
// the new key (ErrConflict), then write.
func (s *Store) UpdateResult(ctx context.Context, orig models.ResultKey, upd models.ResultUpdate) error {
	if strings.TrimSpace(upd.House) == "" || strings.TrimSpace(upd.Event) == "" {
		return validationError("updated house and event are required")
	}
	if upd.Placing < 1 {
		return validationError("placing must be a positive integer")
	}
	if upd.Points == nil {
		return validationError("updated points are required")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var origEventID, origHouseID int64
		err := tx.QueryRowContext(ctx, `
			SELECT a.event_id, a.house_id
			FROM arrangement a
			JOIN house h ON a.house_id = h.house_id
			JOIN events e ON a.event_id = e.event_id
			WHERE h.house = $1 AND e.event = $2 AND a.placing = $3
		`, orig.House, orig.Event, int(orig.Placing)).Scan(&origEventID, &origHouseID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: original record", ErrNotFound)
		}
		if err != nil {
			return dbError("find original record", err)
		}

		houseID, err := resolveHouse(ctx, tx, upd.House)
		if errors.Is(err, ErrNotFound) {
			return validationError("house not found: %s", upd.House)
		}
		if err != nil {
			return err
		}

		eventID, err := resolveEvent(ctx, tx, upd.Event)
		if errors.Is(err, ErrNotFound) {
			return validationError("event not found: %s", upd.Event)
		}
		if err != nil {
			return err
		}

		sameKey := eventID == origEventID && houseID == origHouseID && upd.Placing == orig.Placing
		if !sameKey {
			exists, err := arrangementExists(ctx, tx, eventID, houseID, int(upd.Placing))
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%w: a result already exists for this house/event/placing combination", ErrConflict)
			}
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE arrangement
			SET house_id = $1, event_id = $2, placing = $3, points = $4
			WHERE event_id = $5 AND house_id = $6 AND placing = $7
		`, houseID, eventID, int(upd.Placing), int(*upd.Points), origEventID, origHouseID, int(orig.Placing))
		if err != nil {
			return dbError("update arrangement", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return dbError("update arrangement", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: no record was updated", ErrNotFound)
		}
		return nil
	})
}
