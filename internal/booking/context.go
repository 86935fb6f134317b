package booking

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/avstrong/vacaystar/internal/idgen/session"
)

// NewContextWithSession marks ctx as belonging to the booking session id.
func NewContextWithSession(ctx context.Context, id trace.TraceID) context.Context {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    id,
		SpanID:     session.SpanID(id),
		TraceFlags: trace.FlagsSampled,
	})

	return trace.ContextWithSpanContext(ctx, sc)
}

func SessionFromContext(ctx context.Context) (trace.TraceID, bool) {
	sc := trace.SpanContextFromContext(ctx)

	return sc.TraceID(), sc.HasTraceID()
}
