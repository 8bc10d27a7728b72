package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/vitetags/internal/adapters/telemetry"
	"go.trai.ch/vitetags/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func validSpanContext() trace.SpanContext {
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{1},
		SpanID:  trace.SpanID{2},
	})
}

func TestFormatSpan(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		stub tracetest.SpanStub
		want string
	}{
		{
			name: "attributes",
			stub: tracetest.SpanStub{
				Name:      "vite.asset_url",
				StartTime: start,
				EndTime:   start.Add(1500 * time.Microsecond),
				Attributes: []attribute.KeyValue{
					attribute.String("entry", "resources/js/app.js"),
				},
			},
			want: "trace vite.asset_url 1.5ms entry=resources/js/app.js",
		},
		{
			name: "error status",
			stub: tracetest.SpanStub{
				Name:      "vite.tags",
				StartTime: start,
				EndTime:   start.Add(2 * time.Millisecond),
				Status:    sdktrace.Status{Code: codes.Error, Description: "entry not found"},
			},
			want: `trace vite.tags 2ms error="entry not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, telemetry.FormatSpan(tt.stub.Snapshot()))
		})
	}
}

func TestLogProcessor_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged []string
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		logged = append(logged, msg)
	}).Times(1)

	processor := telemetry.NewLogProcessor(mockLogger)

	valid := tracetest.SpanStub{Name: "vite.inline_svg", SpanContext: validSpanContext()}
	processor.OnEnd(valid.Snapshot())

	// Spans without a valid context are not reported.
	invalid := tracetest.SpanStub{Name: "ignored"}
	processor.OnEnd(invalid.Snapshot())

	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "trace vite.inline_svg")

	require.NoError(t, processor.ForceFlush(context.Background()))
	require.NoError(t, processor.Shutdown(context.Background()))
}

func TestNewProvider_LogsEndedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	tp := telemetry.NewProvider(mockLogger)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracerFromProvider(tp, telemetry.InstrumentationName)
	_, span := tracer.Start(context.Background(), "vite.tags")
	span.End()
}
