package models

import (
	"strconv"
	"time"
)

// FireDetection represents a single normalized satellite fire detection.
// Instances are built once by the parser and never mutated afterwards.
type FireDetection struct {
	Latitude  float64 `json:"latitude"`  // degrees north
	Longitude float64 `json:"longitude"` // degrees east
	FRP       float64 `json:"frp"`       // fire radiative power, MW

	AcqDate    string `json:"acq_date"` // YYYY-MM-DD as reported by FIRMS
	AcqTimeRaw string `json:"-"`        // original HHMM encoding, may lack leading zeros

	AcqTimeUTC       string `json:"acq_time_utc"`       // HH:MM
	AcqTimeChile     string `json:"acq_time_chile"`     // HH:MM, fixed UTC-3
	AcqDatetimeChile string `json:"acq_datetime_chile"` // YYYY-MM-DD HH:MM, fixed UTC-3

	// TimestampUTC is unix seconds of the acquisition instant, 0 when the
	// raw date/time could not be parsed. The zero sentinel sorts as
	// "very old", which is what the playback ordering wants.
	TimestampUTC int64   `json:"timestamp_utc"`
	HoursAgo     float64 `json:"hours_ago"` // rounded to 1 decimal, 0 when timestamp absent

	Confidence string `json:"confidence"` // "n" or "h", lower tiers are dropped before construction
	Satellite  string `json:"satellite"`  // source label, passed through unmodified
	DayNight   string `json:"daynight"`   // "Día"/"Noche", or the raw code if unrecognized
}

// RegionBounds is an inclusive rectangular geographic filter, fixed at
// process configuration.
type RegionBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	West  float64 `json:"west"`
	East  float64 `json:"east"`
}

// Contains reports whether the point lies inside the bounds, edges included.
func (b RegionBounds) Contains(lat, lon float64) bool {
	return b.South <= lat && lat <= b.North && b.West <= lon && lon <= b.East
}

// AreaParam renders the bounds in the west,south,east,north order the
// FIRMS area endpoint expects.
func (b RegionBounds) AreaParam() string {
	return formatCoord(b.West) + "," + formatCoord(b.South) + "," + formatCoord(b.East) + "," + formatCoord(b.North)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TimeRange describes the age spread of a detection list.
type TimeRange struct {
	OldestHoursAgo float64 `json:"oldest_hours_ago"`
	NewestHoursAgo float64 `json:"newest_hours_ago"`
}

// FeedResult is the response payload of a single feed cycle. Timestamp
// is RFC3339; for a cached result it is the generation time of the
// cached data, not "now".
type FeedResult struct {
	Fires         []FireDetection `json:"fires"`
	Count         int             `json:"count"`
	Timestamp     string          `json:"timestamp"`
	DaysRequested int             `json:"days_requested"`
	TimeRange     TimeRange       `json:"time_range"`
	Cached        bool            `json:"cached"`
}

// FormatTimestamp renders a feed timestamp the way the API reports it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
