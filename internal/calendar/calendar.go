// Package calendar computes date-indexed session lookups and the month
// grid the calendar page renders from. Everything here is a pure
// function of its inputs; nothing mutates or persists.
package calendar

import (
	"time"

	"github.com/iliyamo/skill-swap/internal/model"
)

// SameDay reports whether two timestamps fall on the same local
// calendar day. Hour, minute and second are ignored; both timestamps
// are converted to local time before their date components are
// compared.
func SameDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}

// SessionsOnDate filters the sessions scheduled on the given local
// calendar day. Order is preserved; the result is recomputed on every
// call since the collection is small and in-memory.
func SessionsOnDate(sessions []model.Session, day time.Time) []model.Session {
	out := []model.Session{}
	for _, s := range sessions {
		if SameDay(s.Date, day) {
			out = append(out, s)
		}
	}
	return out
}

// DayCell is one day of the month grid with the number of sessions
// scheduled on it.
type DayCell struct {
	Day      int `json:"day"`
	Sessions int `json:"sessions"`
}

// MonthGrid is the computed layout of one month. LeadingEmpty counts
// the blank cells before day 1 in a Sunday-first week, so the grid's
// day-of-week columns line up.
type MonthGrid struct {
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	LeadingEmpty int        `json:"leadingEmpty"`
	Days         []DayCell  `json:"days"`
}

// BuildMonthGrid computes the grid for the given month. The weekday
// offset of day 1 (Sunday = 0) and the day count come from calendar
// arithmetic, so variable month lengths and leap years fall out of
// time.Date normalization rather than a lookup table. Each cell
// carries the count of sessions on that day.
func BuildMonthGrid(year int, month time.Month, sessions []model.Session) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	// Day 0 of the next month normalizes to the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)

	grid := MonthGrid{
		Year:         year,
		Month:        month,
		LeadingEmpty: int(first.Weekday()),
		Days:         make([]DayCell, 0, last.Day()),
	}
	for day := 1; day <= last.Day(); day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		grid.Days = append(grid.Days, DayCell{
			Day:      day,
			Sessions: len(SessionsOnDate(sessions, date)),
		})
	}
	return grid
}
