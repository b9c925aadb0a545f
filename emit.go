package partialspan

import (
	"context"
	"fmt"
	"time"

	"github.com/otelpartial/partialspan/observability"
	"go.opentelemetry.io/otel/trace"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Record is a single self-contained log record produced by the emit
// pipeline. It carries everything a collector needs to reconstruct one slice
// of a partial trace without referring back to the span that produced it.
type Record struct {
	Timestamp  time.Time
	TraceID    trace.TraceID
	SpanID     trace.SpanID
	Resource   map[string]string
	Attributes map[string]string
	Body       string
}

// LogExporter is the contract the emit pipeline hands finished records to.
// Implementations (see the logexporter package) are opaque, best-effort
// collaborators: Export errors are logged and counted, never retried, and
// the returned bool from Shutdown only controls whether the processor
// reports a clean or forced shutdown, not whether it blocks further.
type LogExporter interface {
	// Export delivers a batch of records. The emit pipeline always calls it
	// with a single-element slice; Export accepting a slice keeps the
	// contract consistent with exporters that support real batching.
	Export(ctx context.Context, records []Record) error

	// Shutdown releases exporter resources, waiting up to timeout. A
	// negative timeout means wait indefinitely; zero means don't wait at
	// all. It returns false if the timeout elapsed before the exporter
	// finished.
	Shutdown(ctx context.Context, timeout time.Duration) bool
}

// Serializer converts a span snapshot and a Signal into the body string
// carried on a Record. See the envelope package for the default JSON
// implementation and an optional protobuf-backed one.
type Serializer interface {
	Serialize(span sdktrace.ReadOnlySpan, signal Signal) (string, error)

	// BodyType identifies the wire shape Serialize produces (e.g.
	// "json/v1", "protobuf/v1"). It is attached to every Record as the
	// partial.body.type attribute.
	BodyType() string
}

// emit builds and ships one record for span under the given signal. It never
// returns an error to the caller: failures are logged, counted, and reported
// to the Observer, matching the processor's "never block or panic the
// instrumented code path" contract.
func (p *Processor) emit(ctx context.Context, span sdktrace.ReadOnlySpan, signal Signal) {
	start := time.Now()

	body, err := p.cfg.Serializer.Serialize(span, signal)
	if err != nil {
		p.logError("failed to serialize span for emission", err, signal, span)
		p.observeEmit(signal, span, time.Since(start), err)
		return
	}

	attrs := map[string]string{
		"partial.event":     signal.String(),
		"partial.body.type": p.cfg.Serializer.BodyType(),
	}
	if signal == SignalHeartbeat {
		attrs["partial.frequency"] = fmt.Sprintf("%dms", p.cfg.HeartbeatInterval.Milliseconds())
	}

	rec := Record{
		Timestamp:  start,
		TraceID:    span.SpanContext().TraceID(),
		SpanID:     span.SpanContext().SpanID(),
		Resource:   p.resourceAttributes(),
		Attributes: attrs,
		Body:       body,
	}

	err = p.cfg.LogExporter.Export(ctx, []Record{rec})
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrExporterRejected, err)
		p.logError("log exporter rejected record", err, signal, span)
	}

	p.observeEmit(signal, span, time.Since(start), err)

	switch signal {
	case SignalHeartbeat:
		p.metricHeartbeats()
	case SignalStop:
		p.metricStops()
	}
	if err != nil {
		p.metricExporterErrors()
	}
}

// resourceAttributes snapshots the Resource currently bound to the
// processor (see SetResource) into a flat string map suitable for a Record.
func (p *Processor) resourceAttributes() map[string]string {
	p.mu.Lock()
	res := p.resource
	p.mu.Unlock()

	if res == nil {
		return nil
	}
	attrs := make(map[string]string, len(res.Attributes()))
	for _, kv := range res.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	return attrs
}

func (p *Processor) logError(msg string, err error, signal Signal, span sdktrace.ReadOnlySpan) {
	if p.cfg.Logger == nil {
		return
	}
	p.cfg.Logger.Error(msg, err, map[string]interface{}{
		"signal":   signal.String(),
		"span_id":  span.SpanContext().SpanID().String(),
		"trace_id": span.SpanContext().TraceID().String(),
	})
}

func (p *Processor) observeEmit(signal Signal, span sdktrace.ReadOnlySpan, d time.Duration, err error) {
	if p.cfg.Observer == nil {
		return
	}
	p.cfg.Observer.ObserveOperation(observability.OperationContext{
		Component: "partialspan",
		Operation: signal.String(),
		Resource:  span.Name(),
		Duration:  d,
		Error:     err,
	})
}

func (p *Processor) metricHeartbeats() {
	if p.heartbeatsEmitted != nil {
		p.heartbeatsEmitted.Inc()
	}
}

func (p *Processor) metricStops() {
	if p.stopsEmitted != nil {
		p.stopsEmitted.Inc()
	}
}

func (p *Processor) metricExporterErrors() {
	if p.exporterErrors != nil {
		p.exporterErrors.Inc()
	}
}
