package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Community engine metrics
var (
	// LinkAttemptsTotal counts cross-post attempts by outcome
	LinkAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "community_link_attempts_total",
			Help: "Total number of attempts to link an article into a community",
		},
		[]string{"outcome"},
	)

	// OperationDuration measures how long each community operation takes, store round trips included
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "community_operation_duration_seconds",
			Help:    "Duration of community feed operations in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)

	// FeedRecords observes the number of records returned per call
	FeedRecords = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "community_feed_records",
			Help:    "Number of feed records returned by a community operation",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"operation"},
	)

	// StoreFailuresTotal counts operations aborted because the store failed
	StoreFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "community_store_failures_total",
			Help: "Total number of community operations that failed on the store",
		},
		[]string{"operation"},
	)
)

// WriteTextfile dumps every registered metric to path in the Prometheus text format.
// The file is written atomically, so a collector never reads a partial dump.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
