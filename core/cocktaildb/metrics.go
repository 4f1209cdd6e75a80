package cocktaildb

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cocktails_upstream_requests_total",
			Help: "Total number of CocktailDB requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cocktails_upstream_request_duration_seconds",
			Help:    "CocktailDB request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	upstreamCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cocktails_upstream_cache_hits_total",
			Help: "Total number of list lookups served from cache",
		},
		[]string{"operation"},
	)
)
