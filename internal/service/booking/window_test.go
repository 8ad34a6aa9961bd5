package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate_Window(t *testing.T) {
	// late in the day on purpose: only the calendar day may matter
	now := time.Date(2026, 2, 10, 22, 45, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{
			name:    "yesterday fails",
			date:    time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
			wantErr: ErrPastDate,
		},
		{
			name:    "far past fails",
			date:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			wantErr: ErrPastDate,
		},
		{
			name: "today succeeds",
			date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "tomorrow succeeds",
			date: time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "day+7 succeeds, boundary is inclusive",
			date: time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "day+8 fails",
			date:    time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC),
			wantErr: ErrWindowExceeded,
		},
		{
			name:    "far future fails",
			date:    time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			wantErr: ErrWindowExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDate(tt.date, now, 7)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestValidateDate_IgnoresTimeOfDay(t *testing.T) {
	// booking "today" just before midnight must not be rejected as past
	now := time.Date(2026, 2, 10, 23, 59, 59, 0, time.UTC)
	today := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, validateDate(today, now, 7))
}

func TestValidateDate_CustomWindow(t *testing.T) {
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	require.NoError(t, validateDate(time.Date(2026, 2, 24, 0, 0, 0, 0, time.UTC), now, 14))
	assert.ErrorIs(t,
		validateDate(time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC), now, 14),
		ErrWindowExceeded,
	)
}
