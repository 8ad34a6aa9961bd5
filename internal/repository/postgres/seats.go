package postgres

import (
	"context"

	"github.com/deskwise/deskgo/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeatRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *SeatRepo) With(db DB) *SeatRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *SeatRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// List returns the full seat catalog in label order. Label order is the
// stable display order used by every projection.
func (r *SeatRepo) List(ctx context.Context) ([]domain.Seat, error) {
	const op = "postgres.SeatRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, label, x, y
		 FROM seats
		 ORDER BY label`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Seat
	for rows.Next() {
		var s domain.Seat
		if err := rows.Scan(&s.ID, &s.Label, &s.X, &s.Y); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// GetByID retrieves one seat.
//
// Returns:
//   - error: repository.ErrNotFound if no seat has that ID.
func (r *SeatRepo) GetByID(ctx context.Context, id int64) (*domain.Seat, error) {
	const op = "postgres.SeatRepo.GetByID"

	db := r.handle()

	var s domain.Seat
	err := db.QueryRow(ctx,
		`SELECT id, label, x, y
		 FROM seats WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Label, &s.X, &s.Y)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

// UpsertBatch seeds the catalog keyed on label: existing seats get their
// coordinates updated in place, missing ones are created. Safe to re-run.
func (r *SeatRepo) UpsertBatch(ctx context.Context, seats []domain.Seat) error {
	const op = "postgres.SeatRepo.UpsertBatch"

	db := r.handle()

	batch := &pgx.Batch{}
	for _, s := range seats {
		batch.Queue(
			`INSERT INTO seats(label, x, y)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (label) DO UPDATE SET x = EXCLUDED.x, y = EXCLUDED.y`,
			s.Label, s.X, s.Y,
		)
	}
	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}
