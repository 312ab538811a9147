// Package metrics defines the prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardiag_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// DiagnoseDuration tracks the full diagnosis round-trip latency per
	// input kind (code, image, video, sound).
	DiagnoseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cardiag_diagnose_duration_seconds",
		Help:    "Time spent on one diagnosis round trip.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"kind"})

	// UploadBytes tracks the distribution of uploaded media sizes.
	UploadBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cardiag_upload_bytes",
		Help:    "Size of uploaded media files.",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	}, []string{"kind"})

	// UpstreamFailures counts failed API round trips by classified reason.
	UpstreamFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardiag_upstream_failures_total",
		Help: "Failed generative API round trips by classified reason.",
	}, []string{"reason"})

	// CacheHits and CacheMisses track the diagnosis response cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cardiag_cache_hits_total",
		Help: "Diagnosis responses served from the cache.",
	})
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cardiag_cache_misses_total",
		Help: "Diagnosis requests that missed the cache.",
	})
)
