package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GetID mints a trace ID for one booking session from a random UUID.
func (g *Generator) GetID(_ context.Context) (trace.TraceID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return trace.TraceID{}, fmt.Errorf("generate uuid: %w", err)
	}

	return trace.TraceID(id), nil
}

// SpanID derives a span ID from the low half of a trace ID so that the span
// context built from it is valid.
func SpanID(traceID trace.TraceID) trace.SpanID {
	var spanID trace.SpanID

	copy(spanID[:], traceID[8:])

	return spanID
}
