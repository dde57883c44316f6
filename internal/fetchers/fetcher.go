package fetchers

import (
	"context"
	"fmt"
	"time"

	"github.com/mperezcarrasco/wildfires/internal/logger"
	"github.com/mperezcarrasco/wildfires/internal/metrics"
	"github.com/mperezcarrasco/wildfires/internal/models"

	"github.com/go-resty/resty/v2"
)

// DataFetcher handles fetching and parsing detection data from the
// FIRMS area API.
type DataFetcher struct {
	client *resty.Client
	log    *logger.Logger
	now    func() time.Time
}

// NewDataFetcher creates a fetcher whose outbound calls carry the given
// timeout. A timed-out or erroring source is dropped for the cycle, it
// is never retried.
func NewDataFetcher(timeout time.Duration, log *logger.Logger) *DataFetcher {
	client := resty.New()
	client.SetTimeout(timeout)

	return &DataFetcher{
		client: client,
		log:    log.WithComponent("fetchers"),
		now:    time.Now,
	}
}

// FetchAllSources queries every FIRMS source concurrently and returns
// the concatenated parsed detections, in source declaration order. A
// failed source contributes zero records and never blocks the others;
// all sources failing yields an empty list, which the caller resolves
// against the fallback cache.
func (f *DataFetcher) FetchAllSources(ctx context.Context, endpoint, mapKey string, bounds models.RegionBounds, days int) []models.FireDetection {
	type sourceResult struct {
		source string
		fires  []models.FireDetection
	}

	resultChan := make(chan sourceResult, len(Sources))
	errChan := make(chan error, len(Sources))

	for _, source := range Sources {
		go func(source string) {
			csvText, err := f.fetchSource(ctx, endpoint, mapKey, source, bounds, days)
			if err != nil {
				errChan <- err
				return
			}
			resultChan <- sourceResult{source: source, fires: f.parseCSV(source, csvText, bounds)}
		}(source)
	}

	bySource := make(map[string][]models.FireDetection, len(Sources))
	for completed := 0; completed < len(Sources); completed++ {
		select {
		case r := <-resultChan:
			bySource[r.source] = r.fires
		case err := <-errChan:
			f.log.Error("Source fetch failed", err)
		case <-ctx.Done():
			f.log.Warn("Fetch cycle cancelled", map[string]any{"error": ctx.Err().Error()})
			return f.mergeInOrder(bySource)
		}
	}

	return f.mergeInOrder(bySource)
}

// mergeInOrder concatenates per-source results in declaration order so
// a cycle's output does not depend on network timing.
func (f *DataFetcher) mergeInOrder(bySource map[string][]models.FireDetection) []models.FireDetection {
	var merged []models.FireDetection
	for _, source := range Sources {
		merged = append(merged, bySource[source]...)
	}
	return merged
}

// fetchSource issues one area request and returns the raw CSV body.
func (f *DataFetcher) fetchSource(ctx context.Context, endpoint, mapKey, source string, bounds models.RegionBounds, days int) (string, error) {
	url := areaURL(endpoint, mapKey, source, bounds.AreaParam(), days)
	f.log.Info("Fetching FIRMS source", map[string]any{"source": source, "days": days})

	start := time.Now()
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	metrics.FetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.FetchTotal.WithLabelValues(source, "error").Inc()
		return "", fmt.Errorf("failed to fetch %s: %w", source, err)
	}
	if resp.StatusCode() != 200 {
		metrics.FetchTotal.WithLabelValues(source, "error").Inc()
		return "", fmt.Errorf("%s returned status %d", source, resp.StatusCode())
	}

	metrics.FetchTotal.WithLabelValues(source, "ok").Inc()
	return string(resp.Body()), nil
}
