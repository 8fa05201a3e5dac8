// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the community engine metrics:
//   - Link attempts by outcome
//   - Operation latency and result sizes
//   - Store failures by operation
//
// All metrics are automatically registered with the Prometheus default registry.
//
// Example usage:
//
//	import "community-feed/internal/observability/metrics"
//
//	func buildFeed() {
//	    start := time.Now()
//	    // ... assemble records ...
//	    metrics.RecordOperation("build_feed", time.Since(start), len(records))
//	}
package metrics
