package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ResolutionsTotal tracks resolutions by serving tier and result.
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binsight_resolutions_total",
			Help: "Total number of product resolutions",
		},
		[]string{"tier", "result"},
	)

	// CatalogRequestsTotal tracks remote catalog calls.
	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binsight_catalog_requests_total",
			Help: "Total number of catalog API requests",
		},
		[]string{"operation", "status"},
	)

	// CatalogLatency tracks catalog call latency.
	CatalogLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "binsight_catalog_latency_seconds",
			Help:    "Catalog API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// BackgroundRefreshTotal tracks fire-and-forget refresh attempts.
	BackgroundRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binsight_background_refresh_total",
			Help: "Total number of background refresh attempts",
		},
		[]string{"result"},
	)

	// CacheSize tracks the number of products in the memory tier.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "binsight_cache_size",
			Help: "Number of products held in the memory tier",
		},
	)

	// ScansTotal tracks recorded scan history entries per category.
	ScansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "binsight_scans_total",
			Help: "Total number of recorded scans",
		},
		[]string{"category"},
	)
)
