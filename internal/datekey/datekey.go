// Package datekey provides the canonical YYYY-MM-DD addressing used by all
// per-day records, plus the month-grid geometry the calendar is built from.
//
// Months are 0-indexed on input (January = 0) and 1-indexed in the formatted
// key, matching the historical client convention.
package datekey

import (
	"fmt"
	"time"
)

// Format returns the canonical date key for a (year, 0-indexed month, day)
// triple, e.g. Format(2024, 0, 5) == "2024-01-05".
func Format(year, month, day int) string {
	return fmt.Sprintf("%d-%02d-%02d", year, month+1, day)
}

// FromTime returns the date key for t using its local calendar fields.
func FromTime(t time.Time) string {
	return Format(t.Year(), int(t.Month())-1, t.Day())
}

// Parse splits a date key back into (year, 0-indexed month, day).
func Parse(key string) (year, month, day int, err error) {
	var m int
	if _, err = fmt.Sscanf(key, "%d-%d-%d", &year, &m, &day); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return year, m - 1, day, nil
}

// Grid describes the geometry of one calendar month.
type Grid struct {
	// FirstWeekday is the weekday of day 1, with 0 = Sunday.
	FirstWeekday int
	// DaysInMonth is the number of days in the month.
	DaysInMonth int
}

// MonthGrid computes the grid for a (year, 0-indexed month) pair.
// Out-of-range months wrap into the adjacent year (month 12 is January of
// year+1, month -1 is December of year-1); month navigation at year
// boundaries relies on this.
func MonthGrid(year, month int) Grid {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local)
	// Day 0 of the following month is the last day of this one.
	last := time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.Local)
	return Grid{
		FirstWeekday: int(first.Weekday()),
		DaysInMonth:  last.Day(),
	}
}

// AddDays moves a (year, 0-indexed month, day) triple by delta calendar
// days and returns the normalized triple.
func AddDays(year, month, day, delta int) (int, int, int) {
	t := time.Date(year, time.Month(month+1), day+delta, 0, 0, 0, 0, time.Local)
	return t.Year(), int(t.Month()) - 1, t.Day()
}
