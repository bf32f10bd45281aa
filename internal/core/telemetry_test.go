// AngelaMos | 2026
// telemetry_test.go

package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/carterperez-dev/tierhub/internal/config"
)

func TestDisabledTelemetryStillTraces(t *testing.T) {
	ctx := context.Background()

	tel, err := NewTelemetry(ctx, config.OtelConfig{ServiceName: "tierhub-test"}, config.AppConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tel.Shutdown(context.Background()) })

	assert.Empty(t, TraceIDFromContext(ctx))

	spanCtx, span := tel.Tracer.Start(ctx, "GET /api/album")
	defer span.End()

	assert.Len(t, TraceIDFromContext(spanCtx), 32)
}

func TestSetSpanError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "load album")
	SetSpanError(ctx, errors.New("dial tcp: connection refused"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "dial tcp: connection refused", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestAnnotateUser(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "GET /api/me")
	AnnotateUser(ctx, 42, []string{"User", "Modo"})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, int64(42), attrs[AttrUserID].AsInt64())
	assert.Equal(t, []string{"User", "Modo"}, attrs[AttrUserRoles].AsStringSlice())
}

func TestAnnotateUserWithoutSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		AnnotateUser(context.Background(), 1, nil)
	})
}

func TestSampleRatio(t *testing.T) {
	assert.Equal(t, 0.1, sampleRatio(0))
	assert.Equal(t, 0.1, sampleRatio(-1))
	assert.Equal(t, 0.1, sampleRatio(1.5))
	assert.Equal(t, 1.0, sampleRatio(1))
	assert.Equal(t, 0.25, sampleRatio(0.25))
}
