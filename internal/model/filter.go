package model

import (
	"fmt"
	"time"
)

// Filter selects the reporting window for all period-scoped fetches.
// Month is 0-11, matching the period selector used by the frontend.
type Filter struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// CurrentFilter returns the filter for the month containing now.
func CurrentFilter(now time.Time) Filter {
	return Filter{Month: int(now.Month()) - 1, Year: now.Year()}
}

func (f Filter) Valid() bool {
	return f.Month >= 0 && f.Month <= 11 && f.Year > 0
}

// DaysInMonth returns the number of calendar days in the window.
func (f Filter) DaysInMonth() int {
	return time.Date(f.Year, time.Month(f.Month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the inclusive window bounds as the string forms
// the backend compares against its timestamp columns: first day of the
// month and last day of the month at 23:59:59.
func (f Filter) MonthBounds() (string, string) {
	start := fmt.Sprintf("%04d-%02d-01", f.Year, f.Month+1)
	end := fmt.Sprintf("%04d-%02d-%02dT23:59:59", f.Year, f.Month+1, f.DaysInMonth())
	return start, end
}

// YearBounds returns the half-open window covering a calendar year.
func YearBounds(year int) (string, string) {
	return fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-01-01", year+1)
}
