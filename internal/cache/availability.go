package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const bookedTTL = 30 * time.Second

// Availability caches booked-slot lists per date. A nil *Availability
// is a valid disabled cache: every method is nil-safe so callers never
// branch on configuration.
type Availability struct {
	rdb *redis.Client
}

// NewAvailability returns nil (cache disabled) when url is empty or
// unparseable.
func NewAvailability(url string) *Availability {
	if url == "" {
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("invalid REDIS_URL, availability cache disabled: %v", err)
		return nil
	}

	return &Availability{rdb: redis.NewClient(opts)}
}

func key(date string) string {
	return "availability:" + date
}

func (c *Availability) GetBookedTimes(ctx context.Context, date string) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(date)).Bytes()
	if err != nil {
		return nil, false
	}

	var times []string
	if err := json.Unmarshal(raw, &times); err != nil {
		return nil, false
	}

	return times, true
}

func (c *Availability) SetBookedTimes(ctx context.Context, date string, times []string) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(times)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(date), raw, bookedTTL).Err(); err != nil {
		log.Printf("availability cache set failed: %v", err)
	}
}

// Invalidate drops cached slot lists after any write that changes a
// date's bookings.
func (c *Availability) Invalidate(ctx context.Context, dates ...string) {
	if c == nil || len(dates) == 0 {
		return
	}

	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		if d != "" {
			keys = append(keys, key(d))
		}
	}

	if len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("availability cache invalidate failed: %v", err)
	}
}
