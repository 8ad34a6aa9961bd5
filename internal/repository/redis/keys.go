package redis

import (
	"fmt"
	"time"

	"github.com/deskwise/deskgo/internal/domain"
)

const ns = "deskgo:v1"

func KeyDayCount(date time.Time) string {
	return fmt.Sprintf("%s:day:%s:count", ns, domain.FormatDate(date))
}

// KeyRateLimit is a limiter prefix; the limiter appends the bucket suffix.
func KeyRateLimit(scope string) string {
	return fmt.Sprintf("%s:rl:%s", ns, scope)
}

func ChannelReservationsChanged() string {
	return ns + ":reservations:changed"
}
