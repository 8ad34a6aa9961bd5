package booking

import (
	"context"
	"testing"
	"time"

	"github.com/deskwise/deskgo/internal/domain"
	postgresrepo "github.com/deskwise/deskgo/internal/repository/postgres"
	"github.com/deskwise/deskgo/internal/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB scripts row and exec results in call order, so a test reads as the
// sequence of statements the transaction will issue.
type fakeDB struct {
	t     *testing.T
	rows  []fakeRow
	execs []pgconn.CommandTag
}

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

func (d *fakeDB) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	if len(d.rows) == 0 {
		d.t.Fatalf("unexpected QueryRow: %s", sql)
	}
	row := d.rows[0]
	d.rows = d.rows[1:]
	return row
}

func (d *fakeDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	if len(d.execs) == 0 {
		d.t.Fatalf("unexpected Exec: %s", sql)
	}
	tag := d.execs[0]
	d.execs = d.execs[1:]
	return tag, nil
}

func (d *fakeDB) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	d.t.Fatalf("unexpected Query: %s", sql)
	return nil, nil
}

func (d *fakeDB) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults {
	d.t.Fatal("unexpected SendBatch")
	return nil
}

// fakeTxRunner hands the scripted DB to the service callback and collects
// after-commit hooks without executing them.
type fakeTxRunner struct {
	db    postgresrepo.DB
	hooks []uow.AfterCommit
}

func (f *fakeTxRunner) Do(
	ctx context.Context,
	fn func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error,
) error {
	return fn(ctx, f.db, func(h uow.AfterCommit) { f.hooks = append(f.hooks, h) })
}

func scanErr(err error) fakeRow {
	return fakeRow{scan: func(...any) error { return err }}
}

func scanZero() fakeRow {
	return fakeRow{scan: func(...any) error { return nil }}
}

func scanBool(v bool) fakeRow {
	return fakeRow{scan: func(dest ...any) error {
		*dest[0].(*bool) = v
		return nil
	}}
}

func scanTime(ts time.Time) fakeRow {
	return fakeRow{scan: func(dest ...any) error {
		*dest[0].(*time.Time) = ts
		return nil
	}}
}

// reservationRow matches ReservationRepo.GetByID's scan order.
func reservationRow(id uuid.UUID, owner string) fakeRow {
	return fakeRow{scan: func(dest ...any) error {
		*dest[0].(*uuid.UUID) = id
		*dest[3].(*string) = owner
		return nil
	}}
}

func newTestService(db *fakeDB) (*Service, *fakeTxRunner) {
	runner := &fakeTxRunner{db: db}
	svc := &Service{
		store: postgresrepo.NewStore(nil),
		uow:   runner,
		cfg:   Config{WindowDays: 7},
		now: func() time.Time {
			return time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
		},
	}
	return svc, runner
}

var (
	testIdent = domain.Identity{UserID: "u1", Name: "Alice", Email: "alice@example.com"}
	testDate  = time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)
)

func TestRequestBooking_SeatNotFound(t *testing.T) {
	svc, _ := newTestService(&fakeDB{t: t, rows: []fakeRow{
		scanErr(pgx.ErrNoRows), // seat lookup
	}})

	_, err := svc.RequestBooking(context.Background(), testIdent, 99, testDate, "")
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestRequestBooking_SeatTaken(t *testing.T) {
	svc, _ := newTestService(&fakeDB{t: t, rows: []fakeRow{
		scanZero(),     // seat lookup
		scanBool(true), // seat already reserved
	}})

	_, err := svc.RequestBooking(context.Background(), testIdent, 1, testDate, "")
	assert.ErrorIs(t, err, ErrSeatTaken)
}

func TestRequestBooking_UserAlreadyBooked(t *testing.T) {
	svc, _ := newTestService(&fakeDB{t: t, rows: []fakeRow{
		scanZero(),      // seat lookup
		scanBool(false), // seat free
		scanBool(true),  // user already holds a reservation
	}})

	_, err := svc.RequestBooking(context.Background(), testIdent, 1, testDate, "")
	assert.ErrorIs(t, err, ErrUserAlreadyBooked)
}

// Both pre-checks pass but the insert loses the race; the unique constraint
// violation must surface as the same sentinel as the pre-check.
func TestRequestBooking_SeatConstraintRace(t *testing.T) {
	svc, _ := newTestService(&fakeDB{t: t, rows: []fakeRow{
		scanZero(),
		scanBool(false),
		scanBool(false),
		scanErr(&pgconn.PgError{Code: "23505", ConstraintName: "reservations_date_seat_id_key"}),
	}})

	_, err := svc.RequestBooking(context.Background(), testIdent, 1, testDate, "")
	assert.ErrorIs(t, err, ErrSeatTaken)
}

func TestRequestBooking_UserConstraintRace(t *testing.T) {
	svc, _ := newTestService(&fakeDB{t: t, rows: []fakeRow{
		scanZero(),
		scanBool(false),
		scanBool(false),
		scanErr(&pgconn.PgError{Code: "23505", ConstraintName: "reservations_date_user_id_key"}),
	}})

	_, err := svc.RequestBooking(context.Background(), testIdent, 1, testDate, "")
	assert.ErrorIs(t, err, ErrUserAlreadyBooked)
}

func TestRequestBooking_Success(t *testing.T) {
	created := time.Date(2026, 2, 10, 9, 0, 1, 0, time.UTC)
	svc, runner := newTestService(&fakeDB{t: t, rows: []fakeRow{
		scanZero(),
		scanBool(false),
		scanBool(false),
		scanTime(created), // insert returning created_at
	}})

	res, err := svc.RequestBooking(context.Background(), testIdent, 3, testDate, "")
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.SeatID)
	assert.Equal(t, "u1", res.UserID)
	assert.Equal(t, "Alice", res.UserName)
	assert.Equal(t, testDate, res.Date)
	assert.Equal(t, created, res.CreatedAt)
	assert.Len(t, runner.hooks, 1, "cache invalidation and publish must be queued for after commit")
}

func TestRequestBooking_PastDate(t *testing.T) {
	svc, _ := newTestService(&fakeDB{t: t})

	past := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	_, err := svc.RequestBooking(context.Background(), testIdent, 1, past, "")
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestCancelBooking_NotFound(t *testing.T) {
	svc, _ := newTestService(&fakeDB{t: t, rows: []fakeRow{
		scanErr(pgx.ErrNoRows),
	}})

	err := svc.CancelBooking(context.Background(), testIdent, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking_Forbidden(t *testing.T) {
	id := uuid.New()
	svc, runner := newTestService(&fakeDB{t: t, rows: []fakeRow{
		reservationRow(id, "someone-else"),
	}})

	err := svc.CancelBooking(context.Background(), testIdent, id)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, runner.hooks)
}

// The row is gone by the time the delete runs (cancelled twice).
func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	id := uuid.New()
	svc, _ := newTestService(&fakeDB{
		t:     t,
		rows:  []fakeRow{reservationRow(id, "u1")},
		execs: []pgconn.CommandTag{pgconn.NewCommandTag("DELETE 0")},
	})

	err := svc.CancelBooking(context.Background(), testIdent, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking_Success(t *testing.T) {
	id := uuid.New()
	svc, runner := newTestService(&fakeDB{
		t:     t,
		rows:  []fakeRow{reservationRow(id, "u1")},
		execs: []pgconn.CommandTag{pgconn.NewCommandTag("DELETE 1")},
	})

	err := svc.CancelBooking(context.Background(), testIdent, id)
	require.NoError(t, err)
	assert.Len(t, runner.hooks, 1)
}
