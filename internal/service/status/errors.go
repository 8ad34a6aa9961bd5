package status

import "errors"

var ErrNoSeats = errors.New("seat catalog is empty")
