// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/pointsplus/models"
)

// ListResults returns every arrangement with its house and event names,
// ordered by event date, event, house, placing.
func (s *Store) ListResults(ctx context.Context) ([]models.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT h.house, e.event, COALESCE(e.event_date, ''), a.placing, a.points
		FROM arrangement a
		JOIN house h ON a.house_id = h.house_id
		JOIN events e ON a.event_id = e.event_id
		ORDER BY COALESCE(e.event_date, ''), e.event, h.house, a.placing
	`)
	if err != nil {
		return nil, dbError("list results", err)
	}
	defer rows.Close()

	results := []models.Result{}
	for rows.Next() {
		var r models.Result
		if err := rows.Scan(&r.House, &r.Event, &r.EventDate, &r.Placing, &r.Points); err != nil {
			return nil, dbError("scan result", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list results", err)
	}
	return results, nil
}

// ChartData sums points per (house, event) in a single aggregate query.
// Pairs without any arrangement are absent; chart.Build fills them with zero.
func (s *Store) ChartData(ctx context.Context) ([]models.ChartRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT h.house, h.colour, e.event, COALESCE(e.event_date, ''), SUM(a.points) AS points
		FROM house h
		JOIN arrangement a ON a.house_id = h.house_id
		JOIN events e ON a.event_id = e.event_id
		GROUP BY h.house, h.colour, e.event, e.event_date
		ORDER BY COALESCE(e.event_date, ''), e.event, h.house
	`)
	if err != nil {
		return nil, dbError("aggregate chart data", err)
	}
	defer rows.Close()

	data := []models.ChartRow{}
	for rows.Next() {
		var row models.ChartRow
		if err := rows.Scan(&row.House, &row.Colour, &row.Event, &row.EventDate, &row.Points); err != nil {
			return nil, dbError("scan chart row", err)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("aggregate chart data", err)
	}
	return data, nil
}
