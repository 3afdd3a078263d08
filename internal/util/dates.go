package util

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date format (use YYYY-MM-DD or RFC3339)")

// DateRange is a half-open [From, Until) interval; either side may be open.
type DateRange struct {
	From     time.Time
	HasFrom  bool
	Until    time.Time
	HasUntil bool
}

func parseDate(s string) (t time.Time, ok, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, false, nil
	}
	if tt, e := time.Parse(time.RFC3339, s); e == nil {
		return tt, true, false, nil
	}
	if tt, e := time.Parse("2006-01-02", s); e == nil {
		return tt, true, true, nil
	}
	return time.Time{}, false, false, ErrInvalidDate
}

// ParseDateRange accepts RFC3339 timestamps or YYYY-MM-DD dates. A date-only
// upper bound covers that whole day. Reversed bounds are swapped.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange

	start, hasStart, _, err := parseDate(from)
	if err != nil {
		return r, err
	}
	end, hasEnd, endDateOnly, err := parseDate(to)
	if err != nil {
		return r, err
	}

	if hasStart && hasEnd && end.Before(start) {
		start, end = end, start
	}

	if hasStart {
		r.From, r.HasFrom = start, true
	}
	if hasEnd {
		if endDateOnly {
			end = end.AddDate(0, 0, 1)
		}
		r.Until, r.HasUntil = end, true
	}
	return r, nil
}
