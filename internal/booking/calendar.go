// AngelaMos | 2026
// calendar.go

package booking

import (
	"time"
)

const DefaultHorizonDays = 90

// Calendar decides which days may be booked at all, independent of any
// talent's existing bookings.
type Calendar struct {
	HorizonDays int
	Blocked     []time.Time
	Location    *time.Location
}

func NewCalendar(horizonDays int, blocked []time.Time, loc *time.Location) Calendar {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{HorizonDays: horizonDays, Blocked: blocked, Location: loc}
}

func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Day truncates t to midnight in the calendar's time zone.
func (c Calendar) Day(t time.Time) time.Time {
	return startOfDay(t.In(c.loc()))
}

// IsBookable rejects days whose midnight is already past (today included),
// days beyond the horizon, and blocked days.
func (c Calendar) IsBookable(day, now time.Time) bool {
	d := c.Day(day)
	now = now.In(c.loc())

	if d.Before(now) {
		return false
	}

	if d.After(now.AddDate(0, 0, c.HorizonDays)) {
		return false
	}

	for _, b := range c.Blocked {
		if sameDay(d, c.Day(b)) {
			return false
		}
	}

	return true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
