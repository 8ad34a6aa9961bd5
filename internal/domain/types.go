package domain

import (
	"time"

	"github.com/google/uuid"
)

type SeatStatus string

const (
	SeatFree     SeatStatus = "free"
	SeatReserved SeatStatus = "reserved"
	SeatMine     SeatStatus = "mine"
)

// Identity is the authenticated user as issued by the external identity
// provider. The service trusts it verbatim and never stores credentials.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

// DisplayName is the name denormalized onto a reservation at booking time.
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	if i.Email != "" {
		return i.Email
	}
	return "Unknown"
}

type Seat struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

type Reservation struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	SeatID    int64     `json:"seat_id"`
	UserID    string    `json:"-"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

// SeatWithStatus is the per-viewer projection of a seat for one date.
// ReservedBy carries the booker's display name, never their user ID.
type SeatWithStatus struct {
	Seat
	Status        SeatStatus `json:"status"`
	ReservedBy    string     `json:"reserved_by,omitempty"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
}
