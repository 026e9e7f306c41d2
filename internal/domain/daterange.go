package domain

import "time"

// DateRange is an inclusive time interval. Both endpoints are part of the
// range; Start never exceeds End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a DateRange, failing with an *InvalidRangeError when
// end precedes start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, &InvalidRangeError{Start: start, End: end}
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether t falls inside the range, endpoints included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
