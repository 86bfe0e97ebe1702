// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/pointsplus/models"
)

// DeleteEvent removes an event and every arrangement referencing it.
func (s *Store) DeleteEvent(ctx context.Context, eventID int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return deleteWithDependents(ctx, tx, "events", "event_id", eventID)
	})
}

// DeleteHouse removes a house and every arrangement referencing it.
func (s *Store) DeleteHouse(ctx context.Context, houseID int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return deleteWithDependents(ctx, tx, "house", "house_id", houseID)
	})
}

// deleteWithDependents deletes arrangements before their parent row.
// table and column are constants from this package, never user input.
func deleteWithDependents(ctx context.Context, tx *sql.Tx, table, column string, id int64) error {
	_, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM arrangement WHERE %s = $1", column), id)
	if err != nil {
		return dbError("delete arrangements from "+table, err)
	}

	res, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, column), id)
	if err != nil {
		return dbError("delete from "+table, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return dbError("delete from "+table, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d", ErrNotFound, column, id)
	}
	return nil
}

// DeleteResult removes one arrangement identified by names, resolved now.
func (s *Store) DeleteResult(ctx context.Context, key models.ResultKey) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		houseID, err := resolveHouse(ctx, tx, key.House)
		if err != nil {
			return err
		}
		eventID, err := resolveEvent(ctx, tx, key.Event)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			DELETE FROM arrangement
			WHERE house_id = $1 AND event_id = $2 AND placing = $3
		`, houseID, eventID, int(key.Placing))
		if err != nil {
			return dbError("delete arrangement", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return dbError("delete arrangement", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: result %s/%s/%d", ErrNotFound, key.House, key.Event, key.Placing)
		}
		return nil
	})
}

// Reset empties all four tables, dependents first.
func (s *Store) Reset(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"arrangement", "events", "school", "house"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return dbError("clear "+table, err)
			}
		}
		return nil
	})
}

