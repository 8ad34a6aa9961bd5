package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/deskwise/deskgo/internal/domain"
	"github.com/deskwise/deskgo/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ReservationRepo) With(db DB) *ReservationRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ReservationRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts a reservation. The unique constraints on (date, seat_id)
// and (date, user_id) are the atomic guarantee against concurrent bookings.
//
// Returns:
//   - error: repository.ErrSeatTaken if the seat is already reserved for
//     that date.
//   - error: repository.ErrUserAlreadyBooked if the user already holds a
//     reservation for that date.
func (r *ReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	const op = "postgres.ReservationRepo.Create"

	db := r.handle()

	err := db.QueryRow(ctx,
		`INSERT INTO reservations(id, date, seat_id, user_id, user_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		res.ID, res.Date, res.SeatID, res.UserID, res.UserName,
	).Scan(&res.CreatedAt)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// GetByID retrieves one reservation.
//
// Returns:
//   - error: repository.ErrNotFound if no reservation has that ID.
func (r *ReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	const op = "postgres.ReservationRepo.GetByID"

	db := r.handle()

	var res domain.Reservation
	err := db.QueryRow(ctx,
		`SELECT id, date, seat_id, user_id, user_name, created_at
		 FROM reservations WHERE id = $1`,
		id,
	).Scan(&res.ID, &res.Date, &res.SeatID, &res.UserID, &res.UserName, &res.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &res, nil
}

// Delete removes a reservation.
//
// Returns:
//   - error: repository.ErrNotFound if the reservation no longer exists.
func (r *ReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.ReservationRepo.Delete"

	db := r.handle()

	ct, err := db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

// ListByDate returns every reservation for one calendar day, across all
// users. Order is irrelevant here; projections re-order by seat catalog.
func (r *ReservationRepo) ListByDate(ctx context.Context, date time.Time) ([]domain.Reservation, error) {
	const op = "postgres.ReservationRepo.ListByDate"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, date, seat_id, user_id, user_name, created_at
		 FROM reservations
		 WHERE date = $1`,
		date,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(
			&res.ID,
			&res.Date,
			&res.SeatID,
			&res.UserID,
			&res.UserName,
			&res.CreatedAt,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// ExistsByDateSeat reports whether a seat is already reserved for a date.
// Advisory pre-check only; Create's constraint decides under concurrency.
func (r *ReservationRepo) ExistsByDateSeat(ctx context.Context, date time.Time, seatID int64) (bool, error) {
	const op = "postgres.ReservationRepo.ExistsByDateSeat"

	db := r.handle()

	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM reservations WHERE date = $1 AND seat_id = $2)`,
		date, seatID,
	).Scan(&exists)
	if err != nil {
		return false, wrapDBErr(op, err)
	}

	return exists, nil
}

// ExistsByDateUser reports whether a user already booked any seat for a date.
func (r *ReservationRepo) ExistsByDateUser(ctx context.Context, date time.Time, userID string) (bool, error) {
	const op = "postgres.ReservationRepo.ExistsByDateUser"

	db := r.handle()

	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM reservations WHERE date = $1 AND user_id = $2)`,
		date, userID,
	).Scan(&exists)
	if err != nil {
		return false, wrapDBErr(op, err)
	}

	return exists, nil
}

// CountByDate returns the global reservation count for one calendar day.
func (r *ReservationRepo) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	const op = "postgres.ReservationRepo.CountByDate"

	db := r.handle()

	var count int64
	err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE date = $1`,
		date,
	).Scan(&count)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return count, nil
}
