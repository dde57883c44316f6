package feed

import (
	"math"

	"github.com/mperezcarrasco/wildfires/internal/models"
)

// Deduplicate collapses detections reported at the same ground location
// by more than one source pass. Coordinates are rounded to 4 decimal
// degrees (~11 m) before comparison; there is no clustering beyond
// exact match after rounding. With includeTime the acquisition
// timestamp joins the key, so repeat detections of the same point at
// different times survive for playback. Order is stable, first
// occurrence wins.
func Deduplicate(fires []models.FireDetection, includeTime bool) []models.FireDetection {
	type dedupeKey struct {
		lat, lon  float64
		timestamp int64
	}

	seen := make(map[dedupeKey]struct{}, len(fires))
	unique := make([]models.FireDetection, 0, len(fires))

	for _, fire := range fires {
		key := dedupeKey{lat: round4(fire.Latitude), lon: round4(fire.Longitude)}
		if includeTime {
			key.timestamp = fire.TimestampUTC
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, fire)
	}

	return unique
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
