// Package seeding installs the fixed seat catalog at startup. The upsert is
// keyed on label, so re-running it only refreshes display coordinates.
package seeding

import (
	"context"
	"fmt"

	"github.com/deskwise/deskgo/internal/domain"
	postgresrepo "github.com/deskwise/deskgo/internal/repository/postgres"
	"github.com/deskwise/deskgo/internal/uow"
)

type Service struct {
	store *postgresrepo.Store
	uow   *uow.UoW
}

func New(store *postgresrepo.Store) *Service {
	return &Service{
		store: store,
		uow:   uow.NewUoW(store),
	}
}

// SeedSeats upserts the seat catalog inside one transaction.
func (s *Service) SeedSeats(ctx context.Context, seats []domain.Seat) error {
	const op = "service.seeding.SeedSeats"

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		if err := s.store.Seats().With(tx).UpsertBatch(ctx, seats); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})

	return err
}
