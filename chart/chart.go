// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package chart derives the houses × events matrix shown on the graph and
// results pages from the registered houses and events and the aggregated
// chart feed.
package chart

import (
	"sort"

	"github.com/danielhkuo/pointsplus/models"
)

// Chart is a stacked bar chart: one label per house, one dataset per event.
type Chart struct {
	Houses    []string   `json:"houses"`
	Colours   []string   `json:"colours"`
	Datasets  []Dataset  `json:"datasets"`
	Standings []Standing `json:"standings"`
}

// Points[i] belongs to Houses[i]
type Dataset struct {
	Event     string `json:"event"`
	EventDate string `json:"event_date"`
	Points    []int  `json:"points"`
}

type Standing struct {
	Rank   int    `json:"rank"`
	House  string `json:"house"`
	Colour string `json:"colour"`
	Points int    `json:"points"`
}

// Build takes the cross product of the registered houses and events. A
// (house, event) pair missing from rows counts as zero points, so a house
// or event without any result still gets its column and dataset. Houses
// and events keep the order they are given in. A row naming a house or
// event outside those lists is appended after them.
func Build(houses []models.House, events []models.Event, rows []models.ChartRow) Chart {
	c := Chart{
		Houses:    []string{},
		Colours:   []string{},
		Datasets:  []Dataset{},
		Standings: []Standing{},
	}

	houseIdx := map[string]int{}
	eventIdx := map[string]int{}
	addHouse := func(name, colour string) {
		if _, ok := houseIdx[name]; ok {
			return
		}
		houseIdx[name] = len(c.Houses)
		c.Houses = append(c.Houses, name)
		c.Colours = append(c.Colours, colourOrDefault(colour))
	}
	addEvent := func(name, date string) {
		if _, ok := eventIdx[name]; ok {
			return
		}
		eventIdx[name] = len(c.Datasets)
		c.Datasets = append(c.Datasets, Dataset{Event: name, EventDate: date})
	}

	for _, h := range houses {
		addHouse(h.Name, h.Colour)
	}
	for _, ev := range events {
		addEvent(ev.Name, ev.Date)
	}
	for _, row := range rows {
		addHouse(row.House, row.Colour)
		addEvent(row.Event, row.EventDate)
	}

	for i := range c.Datasets {
		c.Datasets[i].Points = make([]int, len(c.Houses))
	}
	totals := make([]int, len(c.Houses))
	for _, row := range rows {
		h, e := houseIdx[row.House], eventIdx[row.Event]
		c.Datasets[e].Points[h] += row.Points
		totals[h] += row.Points
	}

	for i, house := range c.Houses {
		c.Standings = append(c.Standings, Standing{House: house, Colour: c.Colours[i], Points: totals[i]})
	}
	sort.SliceStable(c.Standings, func(i, j int) bool {
		if c.Standings[i].Points != c.Standings[j].Points {
			return c.Standings[i].Points > c.Standings[j].Points
		}
		return c.Standings[i].House < c.Standings[j].House
	})
	// equal totals share a rank
	for i := range c.Standings {
		if i > 0 && c.Standings[i].Points == c.Standings[i-1].Points {
			c.Standings[i].Rank = c.Standings[i-1].Rank
		} else {
			c.Standings[i].Rank = i + 1
		}
	}

	return c
}

// PointsFor returns the points of house at event, zero when either is unknown.
func (c Chart) PointsFor(house, event string) int {
	for _, ds := range c.Datasets {
		if ds.Event != event {
			continue
		}
		for i, h := range c.Houses {
			if h == house {
				return ds.Points[i]
			}
		}
	}
	return 0
}

func colourOrDefault(colour string) string {
	if colour == "" {
		return models.DefaultColour
	}
	return colour
}
