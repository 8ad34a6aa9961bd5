package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("12/02/2026")
	require.Error(t, err)

	_, err = ParseDate("")
	require.Error(t, err)
}

func TestFormatDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2026-02-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-12", FormatDate(d))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day",
			from: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
			to:   time.Date(2026, 2, 10, 23, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "next day despite late evening",
			from: time.Date(2026, 2, 10, 23, 59, 0, 0, time.UTC),
			to:   time.Date(2026, 2, 11, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "negative when earlier",
			from: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC),
			want: -2,
		},
		{
			name: "one week",
			from: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC),
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestIdentityDisplayName(t *testing.T) {
	assert.Equal(t, "Alice", Identity{UserID: "u1", Name: "Alice", Email: "a@example.com"}.DisplayName())
	assert.Equal(t, "a@example.com", Identity{UserID: "u1", Email: "a@example.com"}.DisplayName())
	assert.Equal(t, "Unknown", Identity{UserID: "u1"}.DisplayName())
}
