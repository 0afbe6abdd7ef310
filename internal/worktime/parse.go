package worktime

import (
	"strconv"
	"strings"
	"time"
)

// Threshold between unix seconds and unix milliseconds. Anything below
// it is scaled up; the backend stores both forms in the same column.
const millisThreshold = 1e12

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseStamp normalizes the polymorphic timestamp representation found
// in the backend tables: an ISO date string, a unix-seconds number, or
// the zero sentinel meaning "unset". Zero and negative values resolve
// to absent, never to the epoch.
func ParseStamp(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "0" {
		return time.Time{}, false
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if n <= 0 {
			return time.Time{}, false
		}
		ms := n
		if n < millisThreshold {
			ms = n * 1000
		}
		return time.UnixMilli(int64(ms)).UTC(), true
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if !t.After(time.Unix(0, 0)) {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}
