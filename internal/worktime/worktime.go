// Package worktime computes elapsed business time: 24 continuous hours
// per business day, zero for weekends and holidays.
package worktime

import (
	"time"

	"dashboard-engine/internal/calendar"
)

// Clock abstracts "now" so the delay calculations can be tested
// against a fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System is the wall-clock Clock used outside tests.
var System Clock = systemClock{}

// FixedClock always returns the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }

func nextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}

// BusinessHoursBetween walks day by day from start to end. Each
// business day contributes the hours actually inside [start, end);
// non-business days contribute nothing. Returns 0 when start >= end.
func BusinessHoursBetween(start, end time.Time) float64 {
	if !start.Before(end) {
		return 0
	}

	hours := 0.0
	current := start
	for current.Before(end) {
		if !calendar.IsBusinessDay(current) {
			current = nextMidnight(current)
			continue
		}
		dayEnd := nextMidnight(current)
		segEnd := end
		if dayEnd.Before(end) {
			segEnd = dayEnd
		}
		if h := segEnd.Sub(current).Hours(); h > 0 {
			hours += h
		}
		current = dayEnd
	}
	return hours
}

// BusinessHoursSince parses a raw timestamp and returns the business
// hours elapsed until clock.Now(). Absent or sentinel timestamps
// contribute zero.
func BusinessHoursSince(raw string, clock Clock) float64 {
	start, ok := ParseStamp(raw)
	if !ok {
		return 0
	}
	return BusinessHoursBetween(start, clock.Now())
}
