// Package tracing provides OpenTelemetry tracing integration.
//
// Usecases open one span per operation through StartSpan. When tracing is enabled,
// InitTracer installs an SDK tracer provider whose finished spans are written to the
// structured logger; otherwise the global no-op provider keeps spans free.
//
// Example usage:
//
//	import "community-feed/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.InitTracer("community-feed", logger)
//	    defer shutdown(context.Background())
//	}
//
//	func buildFeed(ctx context.Context) {
//	    ctx, span := tracing.StartSpan(ctx, "community.BuildFeed")
//	    defer span.End()
//	    // ... build feed ...
//	}
package tracing
