package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyNamespacing(t *testing.T) {
	d := time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "deskgo:v1:day:2026-02-12:count", KeyDayCount(d))
	assert.Equal(t, "deskgo:v1:rl:booking", KeyRateLimit("booking"))
	assert.Equal(t, "deskgo:v1:reservations:changed", ChannelReservationsChanged())
}

// The limiter must compose its bucket keys under the shared namespace.
func TestSlidingWindowLimiterKey(t *testing.T) {
	l := NewSlidingWindowLimiter(nil, KeyRateLimit("booking"), 30, time.Minute)

	assert.Equal(t, "deskgo:v1:rl:booking:ip:10.0.0.1", l.key("ip:10.0.0.1"))
}
