package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/taskscope/internal/adapters/telemetry"
	"go.trai.ch/taskscope/internal/core/ports"
	"go.trai.ch/taskscope/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := telemetry.Setup(sr)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})
	require.Same(t, tp, otel.GetTracerProvider())
	return sr
}

func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), ":compile",
		ports.WithAttribute("task.path", ":compile"),
		ports.WithAttribute("retries", 2),
	)
	span.SetAttribute("task.outcome", "executed")
	span.SetAttribute("did_work", true)
	span.SetAttribute("reasons", []string{"forced"})
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("size", int64(42))
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, ":compile", ended[0].Name())

	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, ":compile", attrs["task.path"].AsString())
	assert.Equal(t, int64(2), attrs["retries"].AsInt64())
	assert.Equal(t, "executed", attrs["task.outcome"].AsString())
	assert.True(t, attrs["did_work"].AsBool())
	assert.Equal(t, []string{"forced"}, attrs["reasons"].AsStringSlice())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, int64(42), attrs["size"].AsInt64())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}

func TestOTelTracer_RecordErrorSetsStatus(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), ":test")
	span.RecordError(errors.New("tests failed"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "tests failed", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestOTelTracer_ChildSpanInheritsParent(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	ctx, parent := tracer.Start(context.Background(), "build")
	_, child := tracer.Start(ctx, ":compile")
	child.End()
	parent.End()

	ended := sr.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "anything", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, got)

	assert.NotPanics(t, func() {
		span.SetAttribute("k", 1)
		span.RecordError(errors.New("ignored"))
		span.AddEvent("problem", map[string]any{"k": "v"})
		span.End()
		tracer.SpanFromContext(ctx).AddEvent("problem", nil)
	})
}

func TestOTelTracer_SpanFromContextAddsEvent(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	ctx, span := tracer.Start(context.Background(), ":lint")
	tracer.SpanFromContext(ctx).AddEvent("problem", map[string]any{
		"problem.label": "line too long",
		"problem.line":  3,
	})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	events := ended[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "problem", events[0].Name)

	attrs := attrMap(events[0].Attributes)
	assert.Equal(t, "line too long", attrs["problem.label"].AsString())
	assert.Equal(t, int64(3), attrs["problem.line"].AsInt64())
}

func TestOTelTracer_SpanFromContextWithoutSpan(t *testing.T) {
	setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	span := tracer.SpanFromContext(context.Background())
	assert.NotPanics(t, func() {
		span.AddEvent("problem", map[string]any{"k": "v"})
		span.SetAttribute("k", "v")
		span.End()
	})
}

func TestLogBridge_LogsFinishedTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, ":compile finished in")
	}).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(mockLogger)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), ":compile")
	span.SetAttributes(attribute.String("task.path", ":compile"))
	span.End()
}

func TestLogBridge_LogsFailedTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), "exit status 1")
	}).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(mockLogger)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), ":test")
	span.SetAttributes(attribute.String("task.path", ":test"))
	span.SetStatus(codes.Error, "exit status 1")
	span.End()
}

func TestLogBridge_IgnoresNonTaskSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(mockLogger)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "build")
	span.End()
}

func TestLogBridge_NilLogger(t *testing.T) {
	bridge := telemetry.NewLogBridge(nil)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), ":compile")
	span.SetAttributes(attribute.String("task.path", ":compile"))
	assert.NotPanics(t, func() { span.End() })
	require.NoError(t, bridge.ForceFlush(context.Background()))
	require.NoError(t, bridge.Shutdown(context.Background()))
}
