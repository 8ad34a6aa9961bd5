package booking

import "errors"

var (
	ErrPastDate          = errors.New("date is in the past")
	ErrWindowExceeded    = errors.New("date is beyond the booking window")
	ErrSeatNotFound      = errors.New("seat not found")
	ErrSeatTaken         = errors.New("seat already reserved for this date")
	ErrUserAlreadyBooked = errors.New("user already has a reservation for this date")
	ErrNotFound          = errors.New("reservation not found")
	ErrForbidden         = errors.New("reservation belongs to another user")
)
