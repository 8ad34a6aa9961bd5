package status

import (
	"context"
	"fmt"
	"time"

	"github.com/deskwise/deskgo/internal/domain"
	postgresrepo "github.com/deskwise/deskgo/internal/repository/postgres"
	redisrepo "github.com/deskwise/deskgo/internal/repository/redis"
)

type Config struct {
	// DayCountTTL bounds staleness of the date-picker occupancy counts.
	DayCountTTL time.Duration
}

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.DayCountTTL <= 0 {
		cfg.DayCountTTL = 15 * time.Second
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// ProjectSeatStatuses returns every seat with its per-viewer status for one
// calendar day, in catalog (label) order. Statuses are derived at request
// time and never cached: the result depends on the viewing user.
//
// Parameters:
//   - ctx: request-scoped context.
//   - date: calendar day, normalized to midnight UTC.
//   - viewerID: user the projection is computed for.
//
// Returns:
//   - []domain.SeatWithStatus: ordered projection.
//   - error: status.ErrNoSeats if the catalog was never seeded.
func (s *Service) ProjectSeatStatuses(
	ctx context.Context,
	date time.Time,
	viewerID string,
) ([]domain.SeatWithStatus, error) {
	const op = "service.status.ProjectSeatStatuses"

	date = domain.Midnight(date)

	seats, err := s.store.Seats().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(seats) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSeats)
	}

	reservations, err := s.store.Reservations().ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return project(seats, reservations, viewerID), nil
}

// CountReservations returns the global reservation count for each requested
// day, zero for days without reservations. Counts are cached per day with a
// short TTL and invalidated after every booking or cancellation commit.
//
// Parameters:
//   - ctx: request-scoped context.
//   - dates: set of calendar days to annotate.
//
// Returns:
//   - map[string]int64: YYYY-MM-DD keys to counts, one entry per input day.
func (s *Service) CountReservations(
	ctx context.Context,
	dates []time.Time,
) (map[string]int64, error) {
	const op = "service.status.CountReservations"

	out := make(map[string]int64, len(dates))

	for _, d := range dates {
		date := domain.Midnight(d)
		key := redisrepo.KeyDayCount(date)

		count, err := redisrepo.GetOrSetJSON(
			ctx,
			s.cache,
			key,
			s.cfg.DayCountTTL,
			func(ctx context.Context) (int64, error) {
				return s.store.Reservations().CountByDate(ctx, date)
			},
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		out[domain.FormatDate(date)] = count
	}

	return out, nil
}
