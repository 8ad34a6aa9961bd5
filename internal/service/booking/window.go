package booking

import (
	"time"

	"github.com/deskwise/deskgo/internal/domain"
)

// validateDate checks the requested day against the booking window
// [today, today+windowDays]. Both ends are inclusive: with the default
// window of 7 days there are exactly 8 bookable days.
func validateDate(date, now time.Time, windowDays int) error {
	diff := domain.DaysBetween(now, date)

	if diff < 0 {
		return ErrPastDate
	}

	if diff > windowDays {
		return ErrWindowExceeded
	}

	return nil
}
