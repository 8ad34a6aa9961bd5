package status

import (
	"testing"
	"time"

	"github.com/deskwise/deskgo/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeats() []domain.Seat {
	return []domain.Seat{
		{ID: 1, Label: "A1", X: 115, Y: 80},
		{ID: 2, Label: "A2", X: 185, Y: 80},
		{ID: 3, Label: "A3", X: 255, Y: 80},
	}
}

func TestProject_NoReservations(t *testing.T) {
	out := project(testSeats(), nil, "u1")

	require.Len(t, out, 3)
	for _, sws := range out {
		assert.Equal(t, domain.SeatFree, sws.Status)
		assert.Empty(t, sws.ReservedBy)
		assert.Nil(t, sws.ReservationID)
	}
}

func TestProject_MineAndReserved(t *testing.T) {
	date := time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)
	mine := domain.Reservation{
		ID:       uuid.New(),
		Date:     date,
		SeatID:   1,
		UserID:   "u1",
		UserName: "Alice",
	}
	other := domain.Reservation{
		ID:       uuid.New(),
		Date:     date,
		SeatID:   3,
		UserID:   "u2",
		UserName: "Bob",
	}

	out := project(testSeats(), []domain.Reservation{other, mine}, "u1")

	require.Len(t, out, 3)

	assert.Equal(t, domain.SeatMine, out[0].Status)
	require.NotNil(t, out[0].ReservationID)
	assert.Equal(t, mine.ID, *out[0].ReservationID)

	assert.Equal(t, domain.SeatFree, out[1].Status)

	assert.Equal(t, domain.SeatReserved, out[2].Status)
	assert.Equal(t, "Bob", out[2].ReservedBy)
}

func TestProject_OtherViewerSeesReserved(t *testing.T) {
	date := time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)
	res := domain.Reservation{
		ID:       uuid.New(),
		Date:     date,
		SeatID:   2,
		UserID:   "u1",
		UserName: "Alice",
	}

	// a third user who holds nothing sees the same thing as u2
	for _, viewer := range []string{"u2", "u3"} {
		out := project(testSeats(), []domain.Reservation{res}, viewer)

		require.Len(t, out, 3)
		assert.Equal(t, domain.SeatReserved, out[1].Status)
		assert.Equal(t, "Alice", out[1].ReservedBy)
	}
}

func TestProject_OrderFollowsCatalog(t *testing.T) {
	// reservations arrive in arbitrary order; output must follow seats
	date := time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)
	reservations := []domain.Reservation{
		{ID: uuid.New(), Date: date, SeatID: 3, UserID: "u3", UserName: "Carol"},
		{ID: uuid.New(), Date: date, SeatID: 1, UserID: "u2", UserName: "Bob"},
	}

	out := project(testSeats(), reservations, "u1")

	require.Len(t, out, 3)
	assert.Equal(t, "A1", out[0].Label)
	assert.Equal(t, "A2", out[1].Label)
	assert.Equal(t, "A3", out[2].Label)
}
