package postgres

import (
	"errors"
	"fmt"

	"github.com/deskwise/deskgo/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Uniqueness on reservations is the real booking guarantee: the application
// pre-checks are advisory, the named constraints decide races.
const (
	constraintDateSeat = "reservations_date_seat_id_key"
	constraintDateUser = "reservations_date_user_id_key"
)

// wrapDBErr maps common DB errors to repository-level errors and wraps them
// with the provided operation name.
func wrapDBErr(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		// unique_violation
		if pge.Code == "23505" {
			switch pge.ConstraintName {
			case constraintDateSeat:
				return fmt.Errorf("%s: %w", op, repository.ErrSeatTaken)
			case constraintDateUser:
				return fmt.Errorf("%s: %w", op, repository.ErrUserAlreadyBooked)
			default:
				return fmt.Errorf("%s: %w", op, repository.ErrConflict)
			}
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
