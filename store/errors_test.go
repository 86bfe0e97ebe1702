// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/pointsplus/testutil"
)

func TestDBError_Classification(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.SeedHouse(t, conn, "Red", "#f00")

	_, err := conn.Exec("INSERT INTO house (house, colour) VALUES ('Red', '#f00')")
	assert.Error(t, err)
	assert.ErrorIs(t, dbError("insert house", err), ErrConflict)

	generic := errors.New("disk I/O error")
	wrapped := dbError("insert house", generic)
	assert.ErrorIs(t, wrapped, ErrDatabase)
	assert.ErrorIs(t, wrapped, generic)
	assert.NotErrorIs(t, wrapped, ErrConflict)

	assert.ErrorIs(t, dbError("insert", &pq.Error{Code: "23505"}), ErrConflict)
	assert.ErrorIs(t, dbError("insert", &pq.Error{Code: "23503"}), ErrDatabase)
}

func TestSentinelHierarchy(t *testing.T) {
	assert.ErrorIs(t, ErrHouseNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEventNotFound, ErrNotFound)
	assert.NotErrorIs(t, ErrHouseNotFound, ErrEventNotFound)
	assert.ErrorIs(t, validationError("x %d", 1), ErrValidation)
}
