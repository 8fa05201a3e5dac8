// Package observability provides the observability infrastructure of the
// community feed engine: structured logging, Prometheus metrics, and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracing integration
//
// Example usage:
//
//	import (
//	    "community-feed/internal/observability/logging"
//	    "community-feed/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger(os.Stderr, "info", "json")
//	    logger.Info("feed built")
//
//	    metrics.RecordLinkAttempt("linked")
//	}
package observability
