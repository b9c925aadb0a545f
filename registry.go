package partialspan

import (
	"go.opentelemetry.io/otel/trace"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// spanRegistry is the active-span index described by the design's "Span
// registry" component. It is a plain map: every method must be called while
// holding the owning Processor's mutex. It does not lock itself, because its
// invariants (span_id ∈ DelayedIndex ⇒ entry ∈ DelayedQueue) only hold when
// it is updated atomically alongside the scheduler's queues, and a second,
// independent lock would not provide that atomicity.
type spanRegistry struct {
	spans map[trace.SpanID]sdktrace.ReadWriteSpan
}

func newSpanRegistry() *spanRegistry {
	return &spanRegistry{spans: make(map[trace.SpanID]sdktrace.ReadWriteSpan)}
}

func (r *spanRegistry) insert(id trace.SpanID, span sdktrace.ReadWriteSpan) {
	r.spans[id] = span
}

func (r *spanRegistry) remove(id trace.SpanID) {
	delete(r.spans, id)
}

func (r *spanRegistry) lookup(id trace.SpanID) (sdktrace.ReadWriteSpan, bool) {
	span, ok := r.spans[id]
	return span, ok
}

func (r *spanRegistry) size() int {
	return len(r.spans)
}
