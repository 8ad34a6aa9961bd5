package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deskwise/deskgo/internal/domain"
	"github.com/deskwise/deskgo/internal/repository"
	postgresrepo "github.com/deskwise/deskgo/internal/repository/postgres"
	redisrepo "github.com/deskwise/deskgo/internal/repository/redis"
	"github.com/deskwise/deskgo/internal/uow"
	"github.com/google/uuid"
)

type Config struct {
	// WindowDays is the booking horizon beyond today, inclusive.
	WindowDays int
}

// txRunner is the transactional boundary the service works against.
// Satisfied by *uow.UoW.
type txRunner interface {
	Do(
		ctx context.Context,
		fn func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error,
	) error
}

type Service struct {
	store   *postgresrepo.Store
	cache   *redisrepo.Cache
	pubsub  *redisrepo.ReservationsPubSub
	limiter *redisrepo.SlidingWindowLimiter
	uow     txRunner
	cfg     Config
	now     func() time.Time
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.ReservationsPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	cfg Config,
) *Service {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 7
	}

	return &Service{
		store:   store,
		cache:   cache,
		pubsub:  pubsub,
		limiter: limiter,
		uow:     uow.NewUoW(store),
		cfg:     cfg,
		now:     time.Now,
	}
}

// RequestBooking reserves a seat for one user and one calendar day.
//
// The in-transaction existence checks give fast, specific failures; the
// store's unique constraints on (date, seat) and (date, user) are what
// actually decide concurrent attempts, so the constraint translation below
// covers the race the checks cannot.
//
// Parameters:
//   - ctx: request-scoped context.
//   - ident: authenticated user requesting the booking.
//   - seatID: seat to reserve.
//   - date: calendar day, normalized to midnight UTC.
//   - rlKey: rate-limit bucket key, empty to skip limiting.
//
// Returns:
//   - *domain.Reservation: the created reservation.
//   - error: booking.ErrPastDate, booking.ErrWindowExceeded,
//     booking.ErrSeatNotFound, booking.ErrSeatTaken or
//     booking.ErrUserAlreadyBooked.
func (s *Service) RequestBooking(
	ctx context.Context,
	ident domain.Identity,
	seatID int64,
	date time.Time,
	rlKey string,
) (*domain.Reservation, error) {
	const op = "service.booking.RequestBooking"

	date = domain.Midnight(date)

	if err := validateDate(date, s.now(), s.cfg.WindowDays); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.limiter != nil && rlKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, rlKey)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: rate limited, retry in %s", op, retry)
		}
	}

	res := &domain.Reservation{
		ID:       uuid.New(),
		Date:     date,
		SeatID:   seatID,
		UserID:   ident.UserID,
		UserName: ident.DisplayName(),
	}

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		if _, err := s.store.Seats().With(tx).GetByID(ctx, seatID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrSeatNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		taken, err := s.store.Reservations().With(tx).ExistsByDateSeat(ctx, date, seatID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if taken {
			return fmt.Errorf("%s: %w", op, ErrSeatTaken)
		}

		booked, err := s.store.Reservations().With(tx).ExistsByDateUser(ctx, date, ident.UserID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if booked {
			return fmt.Errorf("%s: %w", op, ErrUserAlreadyBooked)
		}

		if err := s.store.Reservations().With(tx).Create(ctx, res); err != nil {
			if errors.Is(err, repository.ErrSeatTaken) {
				return fmt.Errorf("%s: %w", op, ErrSeatTaken)
			}

			if errors.Is(err, repository.ErrUserAlreadyBooked) {
				return fmt.Errorf("%s: %w", op, ErrUserAlreadyBooked)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateDate(ctx, date)
			_ = s.pubsub.PublishDateChanged(ctx, date)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// CancelBooking deletes a reservation owned by the requesting user.
//
// Parameters:
//   - ctx: request-scoped context.
//   - ident: authenticated user requesting the cancellation.
//   - reservationID: reservation to cancel.
//
// Returns:
//   - error: booking.ErrNotFound if no such reservation exists.
//   - error: booking.ErrForbidden if it belongs to another user.
func (s *Service) CancelBooking(
	ctx context.Context,
	ident domain.Identity,
	reservationID uuid.UUID,
) error {
	const op = "service.booking.CancelBooking"

	return s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		res, err := s.store.Reservations().With(tx).GetByID(ctx, reservationID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		if res.UserID != ident.UserID {
			return fmt.Errorf("%s: %w", op, ErrForbidden)
		}

		if err := s.store.Reservations().With(tx).Delete(ctx, reservationID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		date := res.Date
		after(func(ctx context.Context) {
			_ = s.cache.InvalidateDate(ctx, date)
			_ = s.pubsub.PublishDateChanged(ctx, date)
		})

		return nil
	})
}
