package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/domain"
)

func TestParse(t *testing.T) {
	currentYear := time.Now().UTC().Year()

	testCases := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "ISO date",
			input:    "2025-09-01",
			expected: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "abbreviated month with year",
			input:    "Sep 1 2025",
			expected: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "abbreviated month without year assumes current year",
			input:    "Sep 1",
			expected: time.Date(currentYear, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "day first with abbreviated month",
			input:    "1 Sep 2025",
			expected: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "day first without year assumes current year",
			input:    "1 Sep",
			expected: time.Date(currentYear, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "hyphenated day-month-year",
			input:    "1-Sep-2025",
			expected: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "full month name",
			input:    "September 1 2025",
			expected: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "day first with full month name",
			input:    "1 September 2025",
			expected: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace is ignored",
			input:    "  2025-09-01  ",
			expected: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "ISO fallback with time",
			input:    "2025-09-01T10:30:00",
			expected: time.Date(2025, time.September, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:    "garbage input fails",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "empty input fails",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				var parseErr *domain.DateParseError
				assert.ErrorAs(t, err, &parseErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %v, got %v", tc.expected, got)
		})
	}
}

func TestRange(t *testing.T) {
	t.Run("widens endpoints to full calendar days", func(t *testing.T) {
		r, err := Range("2025-09-01", "2025-09-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2025, time.September, 1, 23, 59, 59, 999999000, time.UTC), r.End)
	})

	t.Run("end before start fails with InvalidRangeError", func(t *testing.T) {
		_, err := Range("2025-09-05", "2025-09-01")
		require.Error(t, err)
		var rangeErr *domain.InvalidRangeError
		assert.ErrorAs(t, err, &rangeErr)
	})

	t.Run("unparseable endpoint fails with DateParseError", func(t *testing.T) {
		_, err := Range("bogus", "2025-09-01")
		require.Error(t, err)
		var parseErr *domain.DateParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

func TestDateRangeContains(t *testing.T) {
	r, err := Range("2025-09-01", "2025-09-05")
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)), "start endpoint is inclusive")
	assert.True(t, r.Contains(time.Date(2025, time.September, 5, 23, 59, 59, 999999000, time.UTC)), "end endpoint is inclusive")
	assert.True(t, r.Contains(time.Date(2025, time.September, 3, 12, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, time.August, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, time.September, 6, 0, 0, 0, 0, time.UTC)))
}

func TestParseProviderInstant(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{
			name:     "strict provider form",
			input:    "2025-09-10T12:00:00Z",
			expected: time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "ISO-8601 with offset normalized to UTC",
			input:    "2025-09-10T14:00:00+02:00",
			expected: time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "offset-less ISO-8601 keeps the time of day",
			input:    "2025-09-05T14:30:00",
			expected: time.Date(2025, time.September, 5, 14, 30, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "space-separated ISO-8601 keeps the time of day",
			input:    "2025-09-05 14:30:00",
			expected: time.Date(2025, time.September, 5, 14, 30, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "date-only fallback truncates at T",
			input:    "2025-09-10Tjunk",
			expected: time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "bare date",
			input:    "2025-09-10",
			expected: time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{name: "empty input is absent, not an error", input: "", ok: false},
		{name: "unparseable input is absent, not an error", input: "last tuesday", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseProviderInstant(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, tc.expected.Equal(got), "expected %v, got %v", tc.expected, got)
			}
		})
	}
}
