package feed

import (
	"sync"
	"time"

	"github.com/mperezcarrasco/wildfires/internal/models"
)

// Cache holds the last non-empty deduplicated detection list and its
// generation time, shared across concurrent feed cycles. Staleness is
// unbounded; the only signal is the returned timestamp. Callers must
// treat the returned slice as read-only.
type Cache struct {
	mu        sync.Mutex
	fires     []models.FireDetection
	timestamp time.Time
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Resolve applies the fallback policy as a single critical section:
// a non-empty list overwrites the cache and is returned as fresh; an
// empty list returns the prior cached data when there is any; with
// nothing cached the empty list passes through as a fresh result.
func (c *Cache) Resolve(fires []models.FireDetection, now time.Time) ([]models.FireDetection, time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(fires) > 0 {
		c.fires = fires
		c.timestamp = now
		return fires, now, false
	}
	if len(c.fires) > 0 {
		return c.fires, c.timestamp, true
	}
	return fires, now, false
}

// Snapshot returns the cached list and timestamp without mutating the
// cache. Used by the health endpoint.
func (c *Cache) Snapshot() ([]models.FireDetection, time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fires, c.timestamp
}
