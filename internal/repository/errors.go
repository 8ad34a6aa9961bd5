package repository

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrSeatTaken         = errors.New("seat already reserved for this date")
	ErrUserAlreadyBooked = errors.New("user already has a reservation for this date")
)
