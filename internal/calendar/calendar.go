// Package calendar knows which days count as Brazilian business days:
// Monday to Friday, excluding national fixed and movable holidays.
package calendar

import "time"

// Fixed national holidays, keyed MM-DD.
var fixedHolidays = map[string]struct{}{
	"01-01": {}, // Ano Novo
	"04-21": {}, // Tiradentes
	"05-01": {}, // Dia do Trabalho
	"09-07": {}, // Independência
	"10-12": {}, // Nossa Senhora Aparecida
	"11-02": {}, // Finados
	"11-15": {}, // Proclamação da República
	"12-25": {}, // Natal
}

// EasterSunday computes Easter for a year using the
// Meeus/Jones/Butcher algorithm.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// MovableHolidays returns the Easter-derived holidays of a year:
// Carnival Monday and Tuesday, Good Friday and Corpus Christi.
func MovableHolidays(year int) []time.Time {
	easter := EasterSunday(year)
	return []time.Time{
		easter.AddDate(0, 0, -48), // segunda de Carnaval
		easter.AddDate(0, 0, -47), // terça de Carnaval
		easter.AddDate(0, 0, -2),  // Sexta-feira Santa
		easter.AddDate(0, 0, 60),  // Corpus Christi
	}
}

// IsHoliday reports whether d falls on a fixed or movable national
// holiday. Movable holidays are recomputed for d's own year; only
// month and day matter.
func IsHoliday(d time.Time) bool {
	if _, ok := fixedHolidays[d.Format("01-02")]; ok {
		return true
	}
	for _, h := range MovableHolidays(d.Year()) {
		if h.Month() == d.Month() && h.Day() == d.Day() {
			return true
		}
	}
	return false
}

// IsBusinessDay reports whether d is a weekday and not a holiday.
func IsBusinessDay(d time.Time) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !IsHoliday(d)
}
