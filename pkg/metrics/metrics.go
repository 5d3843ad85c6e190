// Package metrics provides Prometheus metrics of article loading
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// load results
const (
	ResultCacheHit   = "cache_hit"
	ResultFetched    = "fetched"
	ResultFailed     = "failed"
	ResultFallback   = "fallback"
	ResultSuperseded = "superseded"
)

var (
	// LoadsTotal counts article loads by section and result.
	LoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "topstories",
			Name:      "loads_total",
			Help:      "Total number of article loads",
		},
		[]string{"section", "result"},
	)

	// FetchDuration measures remote fetch duration, retries included.
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "topstories",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of remote section fetches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"section"},
	)

	// CacheWriteErrors counts failed attempts to persist fetched articles.
	CacheWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "topstories",
			Name:      "cache_write_errors_total",
			Help:      "Total number of failed cache writes",
		},
	)
)
