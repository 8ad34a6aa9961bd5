package postgres

import (
	"io"
	"testing"

	"github.com/deskwise/deskgo/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapDBErr(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "no rows",
			in:   pgx.ErrNoRows,
			want: repository.ErrNotFound,
		},
		{
			name: "seat uniqueness",
			in:   &pgconn.PgError{Code: "23505", ConstraintName: "reservations_date_seat_id_key"},
			want: repository.ErrSeatTaken,
		},
		{
			name: "user uniqueness",
			in:   &pgconn.PgError{Code: "23505", ConstraintName: "reservations_date_user_id_key"},
			want: repository.ErrUserAlreadyBooked,
		},
		{
			name: "unrecognized unique violation",
			in:   &pgconn.PgError{Code: "23505", ConstraintName: "reservations_pkey"},
			want: repository.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapDBErr("op", tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWrapDBErr_Passthrough(t *testing.T) {
	assert.NoError(t, wrapDBErr("op", nil))

	err := wrapDBErr("op", io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.NotErrorIs(t, err, repository.ErrConflict)
}
