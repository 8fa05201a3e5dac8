// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Correlation ID propagation
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	import "community-feed/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewLogger(os.Stderr, "info", "json")
//	    ctx := logging.WithCorrelationID(context.Background(), logging.NewCorrelationID())
//	    logging.WithContextCorrelation(ctx, logger).Info("command started")
//	}
package logging
