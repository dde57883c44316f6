// Package metrics declares the Prometheus instruments for the fire
// feed pipeline. All instruments are registered on the default
// registry and exposed via /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchTotal counts outbound FIRMS requests per source and outcome
	// ("ok" or "error").
	FetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wildfires_firms_fetch_total",
		Help: "FIRMS area requests by source and outcome",
	}, []string{"source", "outcome"})

	// FetchDuration observes per-source request latency.
	FetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wildfires_firms_fetch_duration_seconds",
		Help:    "FIRMS area request duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})

	// RowsParsed counts CSV rows that produced a detection, per source.
	RowsParsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wildfires_rows_parsed_total",
		Help: "CSV rows converted into detections",
	}, []string{"source"})

	// RowsDropped counts CSV rows discarded during parsing, per source
	// and reason ("bounds", "confidence", "malformed").
	RowsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wildfires_rows_dropped_total",
		Help: "CSV rows discarded during parsing",
	}, []string{"source", "reason"})

	// CacheFallbacks counts feed cycles answered from the stale cache.
	CacheFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wildfires_cache_fallbacks_total",
		Help: "Feed cycles served from the fallback cache",
	})

	// DetectionsServed tracks the detection count of the last feed cycle.
	DetectionsServed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wildfires_detections_served",
		Help: "Detections in the most recent feed response",
	})
)
