package status

import "github.com/deskwise/deskgo/internal/domain"

// project joins the seat catalog with one day's reservations for a viewer.
// Output order follows the catalog order of seats, never reservation order.
// The booker's display name is exposed on seats reserved by someone else;
// their user ID is not.
func project(
	seats []domain.Seat,
	reservations []domain.Reservation,
	viewerID string,
) []domain.SeatWithStatus {
	bySeat := make(map[int64]*domain.Reservation, len(reservations))
	for i := range reservations {
		bySeat[reservations[i].SeatID] = &reservations[i]
	}

	out := make([]domain.SeatWithStatus, 0, len(seats))
	for _, seat := range seats {
		sws := domain.SeatWithStatus{
			Seat:   seat,
			Status: domain.SeatFree,
		}

		if res, ok := bySeat[seat.ID]; ok {
			if res.UserID == viewerID {
				sws.Status = domain.SeatMine
			} else {
				sws.Status = domain.SeatReserved
			}
			sws.ReservedBy = res.UserName
			id := res.ID
			sws.ReservationID = &id
		}

		out = append(out, sws)
	}

	return out
}
