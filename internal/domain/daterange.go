package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDateRange is returned when a range is empty or inverted
	ErrInvalidDateRange = errors.New("invalid date range")
)

// DateRange is an inclusive range of calendar days [Start, End]
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses two YYYY-MM-DD strings into a validated range
func NewDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateFormat, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start date %q: %v", ErrInvalidDateRange, start, err)
	}
	e, err := time.Parse(DateFormat, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end date %q: %v", ErrInvalidDateRange, end, err)
	}

	r := DateRange{Start: s, End: e}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate checks that Start is not after End
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: both dates are required", ErrInvalidDateRange)
	}
	if DayOf(r.Start).After(DayOf(r.End)) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidDateRange,
			r.Start.Format(DateFormat), r.End.Format(DateFormat))
	}
	return nil
}

// Contains reports whether the date's calendar day is inside the range
// Equivalent to lexical comparison of YYYY-MM-DD strings
func (r DateRange) Contains(date time.Time) bool {
	d := DayOf(date)
	return !d.Before(DayOf(r.Start)) && !d.After(DayOf(r.End))
}

// Days returns every calendar day in the range, inclusive
func (r DateRange) Days() []time.Time {
	start, end := DayOf(r.Start), DayOf(r.End)
	if start.After(end) {
		return nil
	}

	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// LengthDays returns the number of days in the range
func (r DateRange) LengthDays() int {
	return len(r.Days())
}

// String formats the range for logs
func (r DateRange) String() string {
	return r.Start.Format(DateFormat) + ".." + r.End.Format(DateFormat)
}

// DayOf truncates a time to its calendar day in UTC
// Calendar arithmetic in UTC is immune to DST transitions
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
