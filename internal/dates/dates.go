// Package dates parses user-supplied date strings and provider timestamps.
package dates

import (
	"strings"
	"time"

	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/domain"
)

// userLayouts are tried in order; the first that matches wins. The order is
// part of the contract: inputs like "Sep 1" are ambiguous across layouts.
var userLayouts = []struct {
	layout  string
	hasYear bool
}{
	{"2006-01-02", true},
	{"Jan 2 2006", true},
	{"Jan 2", false},
	{"2 Jan 2006", true},
	{"2 Jan", false},
	{"2-Jan-2006", true},
	{"2 January 2006", true},
	{"January 2 2006", true},
	{"January 2", false},
}

// isoFallbacks cover generic ISO-8601 inputs that none of the user layouts
// accept, such as "2025-09-01T10:30:00".
var isoFallbacks = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Parse converts a flexible user date string into an instant. Layouts
// without a year assume the current calendar year. Failing every layout and
// the ISO fallback, it returns a *domain.DateParseError.
func Parse(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	for _, ul := range userLayouts {
		t, err := time.Parse(ul.layout, s)
		if err != nil {
			continue
		}
		if !ul.hasYear {
			now := time.Now().UTC()
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
		return t, nil
	}
	for _, layout := range isoFallbacks {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &domain.DateParseError{Input: text}
}

// Range parses both endpoints, widens them to full calendar days (start
// floored to 00:00:00.000000, end ceiled to 23:59:59.999999) and validates
// their order.
func Range(startText, endText string) (domain.DateRange, error) {
	start, err := Parse(startText)
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := Parse(endText)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.NewDateRange(FloorDay(start), CeilDay(end))
}

// FloorDay truncates t to the first instant of its calendar day.
func FloorDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CeilDay moves t to the last representable microsecond of its calendar day.
func CeilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999000, t.Location())
}

// providerLayouts for ParseProviderInstant: strict provider form first, then
// generic ISO-8601 with or without an offset.
var providerLayouts = []string{
	"2006-01-02T15:04:05Z",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseProviderInstant permissively parses a provider timestamp field.
// Empty input and unparseable input both return ok=false: provider
// timestamps are optional, and callers treat "unparseable" exactly like
// "not present". This function never fails.
func ParseProviderInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range providerLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	// Date-only fallback: keep whatever precedes the first 'T'.
	datePart, _, _ := strings.Cut(s, "T")
	if t, err := time.Parse("2006-01-02", datePart); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}
