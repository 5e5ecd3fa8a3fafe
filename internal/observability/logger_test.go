package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out), "body=%s", buf.String())
	return out
}

func TestLogger_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "prod")

	ctx := WithRequestID(context.Background(), "req-123")
	log.InfoContext(ctx, "hello")

	line := decodeLine(t, &buf)
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "req-123", line["request_id"])
	assert.NotContains(t, line, "trace_id")
}

func TestLogger_AddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "prod")

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	log.InfoContext(ctx, "traced")

	line := decodeLine(t, &buf)
	assert.Equal(t, span.SpanContext().TraceID().String(), line["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), line["span_id"])
}

func TestLogger_DebugOnlyInDev(t *testing.T) {
	var buf bytes.Buffer

	NewLoggerTo(&buf, "prod").Debug("hidden")
	assert.Zero(t, buf.Len())

	NewLoggerTo(&buf, "dev").Debug("shown")
	assert.NotZero(t, buf.Len())
}

func TestRequestIDFrom_EmptyIsAbsent(t *testing.T) {
	_, ok := RequestIDFrom(WithRequestID(context.Background(), ""))
	assert.False(t, ok)

	_, ok = RequestIDFrom(context.Background())
	assert.False(t, ok)
}
