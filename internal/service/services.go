package service

import (
	postgres "github.com/deskwise/deskgo/internal/repository/postgres"
	redis "github.com/deskwise/deskgo/internal/repository/redis"
	"github.com/deskwise/deskgo/internal/service/booking"
	"github.com/deskwise/deskgo/internal/service/seeding"
	"github.com/deskwise/deskgo/internal/service/status"
)

type Services struct {
	Booking *booking.Service
	Status  *status.Service
	Seeding *seeding.Service
}

type Config struct {
	Booking booking.Config
	Status  status.Config
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redis.ReservationsPubSub,
	limiter *redis.SlidingWindowLimiter,
	cfg Config,
) *Services {
	return &Services{
		Booking: booking.New(store, cache, pubsub, limiter, cfg.Booking),
		Status:  status.New(store, cache, cfg.Status),
		Seeding: seeding.New(store),
	}
}
