package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/vitetags/internal/core/ports"
)

// LogProcessor implements sdktrace.SpanProcessor by writing one log line per
// ended span.
type LogProcessor struct {
	logger ports.Logger
}

var _ sdktrace.SpanProcessor = (*LogProcessor)(nil)

// NewLogProcessor returns a LogProcessor writing to logger.
func NewLogProcessor(logger ports.Logger) *LogProcessor {
	return &LogProcessor{logger: logger}
}

// OnStart is a no-op; spans are reported when they end.
func (p *LogProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if p.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	p.logger.Info(FormatSpan(s))
}

// Shutdown has nothing to release.
func (p *LogProcessor) Shutdown(context.Context) error { return nil }

// ForceFlush has nothing buffered.
func (p *LogProcessor) ForceFlush(context.Context) error { return nil }

// FormatSpan renders s as "trace <name> <duration> k=v ...".
func FormatSpan(s sdktrace.ReadOnlySpan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "trace %s %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))

	for _, kv := range s.Attributes() {
		fmt.Fprintf(&b, " %s=%s", kv.Key, kv.Value.Emit())
	}
	if st := s.Status(); st.Code == codes.Error {
		fmt.Fprintf(&b, " error=%q", st.Description)
	}
	return b.String()
}
