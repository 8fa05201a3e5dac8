package metrics

import (
	"time"
)

// RecordLinkAttempt records the outcome of a cross-post attempt.
// outcome is the LinkOutcome name, e.g. "linked" or "no_overlap".
func RecordLinkAttempt(outcome string) {
	LinkAttemptsTotal.WithLabelValues(outcome).Inc()
}

// RecordOperation records the duration of a completed operation and the number of records it returned.
func RecordOperation(operation string, duration time.Duration, records int) {
	OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if records >= 0 {
		FeedRecords.WithLabelValues(operation).Observe(float64(records))
	}
}

// RecordStoreFailure records an operation that failed because the store was unreachable or errored.
func RecordStoreFailure(operation string) {
	StoreFailuresTotal.WithLabelValues(operation).Inc()
}
