package httpgin

import (
	"time"

	"github.com/deskwise/deskgo/internal/domain"
)

type CreateReservationRequest struct {
	SeatID int64  `json:"seat_id" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

type ReservationResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	SeatID    int64     `json:"seat_id"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

func newReservationResponse(res *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        res.ID.String(),
		Date:      domain.FormatDate(res.Date),
		SeatID:    res.SeatID,
		UserName:  res.UserName,
		CreatedAt: res.CreatedAt,
	}
}

type CancelReservationResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
