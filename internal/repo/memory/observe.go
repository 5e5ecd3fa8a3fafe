package memory

import (
	"context"

	"github.com/geocoder89/staffportal/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/geocoder89/staffportal/internal/repo/memory"

// observe wraps a store op in a span and, when metrics are wired, a timer.
func observe(ctx context.Context, prom *observability.Prom, op string, fn func() error) error {
	_, span := otel.Tracer(tracerName).Start(ctx, op, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	var err error
	if prom != nil {
		err = prom.ObserveStore(op, fn)
	} else {
		err = fn()
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}
