// Package feed implements the fire feed pipeline: fetch all FIRMS
// sources, merge, deduplicate, sort for playback, and resolve the
// result against the stale-data fallback cache.
package feed

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/mperezcarrasco/wildfires/internal/config"
	"github.com/mperezcarrasco/wildfires/internal/fetchers"
	"github.com/mperezcarrasco/wildfires/internal/logger"
	"github.com/mperezcarrasco/wildfires/internal/metrics"
	"github.com/mperezcarrasco/wildfires/internal/models"
)

// ErrMapKeyMissing is returned before any network call when the FIRMS
// map key is not configured. It is the only failure a feed request can
// surface; everything else degrades to an empty or cached result.
var ErrMapKeyMissing = errors.New("MAP_KEY not configured")

// Service runs feed cycles on demand. It is safe for concurrent use;
// the cache is the only shared mutable state.
type Service struct {
	cfg     *config.Config
	fetcher *fetchers.DataFetcher
	cache   *Cache
	log     *logger.Logger
	now     func() time.Time
}

// NewService wires a feed service with an empty fallback cache.
func NewService(cfg *config.Config, fetcher *fetchers.DataFetcher, log *logger.Logger) *Service {
	return &Service{
		cfg:     cfg,
		fetcher: fetcher,
		cache:   NewCache(),
		log:     log.WithComponent("feed"),
		now:     time.Now,
	}
}

// Cache exposes the fallback cache for health reporting.
func (s *Service) Cache() *Cache {
	return s.cache
}

// GetFireFeed runs one request-response cycle. days == 0 means the
// parameter was absent and selects the configured default; any
// supplied value, including negatives, is clamped to the
// FIRMS-accepted range before any request. The returned list is sorted
// by acquisition timestamp ascending, oldest first, for time-ordered
// playback.
func (s *Service) GetFireFeed(ctx context.Context, days int) (*models.FeedResult, error) {
	if s.cfg.MapKey == "" {
		return nil, ErrMapKeyMissing
	}

	if days == 0 {
		days = s.cfg.DefaultDays
	}
	days = fetchers.ClampDays(days)

	merged := s.fetcher.FetchAllSources(ctx, s.cfg.FIRMSAreaURL, s.cfg.MapKey, s.cfg.Bounds, days)

	// Dedupe keeps same-point detections at distinct acquisition times
	// so a hotspot's history survives into the playback. The sort must
	// run over the merged set, never per source.
	unique := Deduplicate(merged, true)
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].TimestampUTC < unique[j].TimestampUTC
	})

	now := s.now().UTC()
	fires, timestamp, cached := s.cache.Resolve(unique, now)
	if cached {
		metrics.CacheFallbacks.Inc()
		s.log.Warn("No fresh detections, serving cached data", map[string]any{
			"generated": models.FormatTimestamp(timestamp),
			"count":     len(fires),
		})
	} else {
		s.log.Info("Feed cycle complete", map[string]any{
			"count": len(fires),
			"days":  days,
		})
	}
	metrics.DetectionsServed.Set(float64(len(fires)))

	return &models.FeedResult{
		Fires:         fires,
		Count:         len(fires),
		Timestamp:     models.FormatTimestamp(timestamp),
		DaysRequested: days,
		TimeRange:     timeRange(fires),
		Cached:        cached,
	}, nil
}

// timeRange summarizes the age spread of a detection list. With the
// list sorted oldest first the extremes are at the ends, but the scan
// does not rely on that.
func timeRange(fires []models.FireDetection) models.TimeRange {
	if len(fires) == 0 {
		return models.TimeRange{}
	}
	tr := models.TimeRange{
		OldestHoursAgo: fires[0].HoursAgo,
		NewestHoursAgo: fires[0].HoursAgo,
	}
	for _, fire := range fires[1:] {
		if fire.HoursAgo > tr.OldestHoursAgo {
			tr.OldestHoursAgo = fire.HoursAgo
		}
		if fire.HoursAgo < tr.NewestHoursAgo {
			tr.NewestHoursAgo = fire.HoursAgo
		}
	}
	return tr
}
