package timetable

import (
	"fmt"
	"time"
)

// Cursor tracks the month and year that day numbers are resolved against.
type Cursor struct {
	Month int
	Year  int
}

// Advance moves to the next month. The month stops at 12 and the year is
// never incremented, so a timetable spanning a new year keeps resolving to
// December.
func (c Cursor) Advance() Cursor {
	c.Month++
	if c.Month > 12 {
		c.Month = 12
	}
	return c
}

// Date composes the calendar date for day in the cursor's month.
func (c Cursor) Date(day int) (time.Time, error) {
	if c.Month < 1 || c.Month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range", c.Month)
	}
	t := time.Date(c.Year, time.Month(c.Month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != c.Month {
		return time.Time{}, fmt.Errorf("day %d is not valid for %s %d", day, time.Month(c.Month), c.Year)
	}
	return t, nil
}
