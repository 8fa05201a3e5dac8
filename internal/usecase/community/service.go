package community

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"community-feed/internal/observability/logging"
	"community-feed/internal/observability/metrics"
	"community-feed/internal/observability/tracing"
	"community-feed/internal/repository"
)

// DefaultWindow is the trailing period a feed looks back over when none is configured.
const DefaultWindow = 7 * 24 * time.Hour

// Service provides the community feed use cases.
// Every read goes through the injected repositories; the service keeps no state
// between calls and is safe for concurrent use.
type Service struct {
	Articles    repository.ArticleRepository
	Communities repository.CommunityRepository
	Categories  repository.CategoryRepository
	Writers     repository.WriterRepository
	Links       repository.LinkRepository

	// Window is the feed look-back period. Zero means DefaultWindow.
	Window time.Duration
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
	// Logger receives policy outcomes at debug level and store failures at error level.
	// Nil means slog.Default().
	Logger *slog.Logger
}

// Since returns the lower creation-date bound of the feed window.
func (s *Service) Since() time.Time {
	w := s.Window
	if w <= 0 {
		w = DefaultWindow
	}
	return s.now().Add(-w)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	return logging.WithContextCorrelation(ctx, l)
}

// operation tracks one use case call for tracing, metrics and failure logging.
type operation struct {
	name  string
	ctx   context.Context
	span  trace.Span
	start time.Time
	svc   *Service
}

func (s *Service) begin(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, *operation) {
	ctx, span := tracing.StartSpan(ctx, "community."+name, attrs...)
	return ctx, &operation{name: name, ctx: ctx, span: span, start: time.Now(), svc: s}
}

// end closes the span and records the call. records < 0 skips the result-size histogram.
func (o *operation) end(records int, err error) {
	defer o.span.End()
	metrics.RecordOperation(o.name, time.Since(o.start), records)
	if err == nil {
		return
	}
	tracing.RecordError(o.span, err)
	if errors.Is(err, ErrStoreFailure) {
		metrics.RecordStoreFailure(o.name)
		o.svc.log(o.ctx).ErrorContext(o.ctx, "community operation failed",
			slog.String("operation", o.name),
			slog.Any("error", err))
		return
	}
	o.svc.log(o.ctx).DebugContext(o.ctx, "community operation rejected",
		slog.String("operation", o.name),
		slog.Any("error", err))
}
