package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/deskwise/deskgo/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ReservationsPubSub is an operational activity feed. Messages announce that
// the reservation set for a date changed; clients still poll, this channel
// serves dashboards and other replicas, not browser push.
type ReservationsPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewReservationsPubSub(rdb *redis.Client) *ReservationsPubSub {
	return &ReservationsPubSub{
		rdb:     rdb,
		channel: ChannelReservationsChanged(),
	}
}

type reservationsChangedMsg struct {
	Type   string `json:"type"`
	Date   string `json:"date"`
	TsUnix int64  `json:"ts_unix"`
}

func (p *ReservationsPubSub) PublishDateChanged(ctx context.Context, date time.Time) error {
	msg := reservationsChangedMsg{
		Type:   "reservations_changed",
		Date:   domain.FormatDate(date),
		TsUnix: time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

func (p *ReservationsPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, date time.Time)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var ev reservationsChangedMsg
			if err := json.Unmarshal([]byte(m.Payload), &ev); err != nil {
				continue
			}
			if date, err := domain.ParseDate(ev.Date); err == nil {
				handler(ctx, date)
			}
		}
	}
}
