// Package partialspan implements a span processor that emits periodic
// heartbeat log records for every span that is currently open, plus a single
// stop record when the span ends, so that a downstream collector can
// reconstruct a partial trace even if the process crashes before the span
// naturally completes.
//
// The processor implements go.opentelemetry.io/otel/sdk/trace.SpanProcessor
// and is registered on a TracerProvider alongside a normal batch span
// processor (see the tracer package); it never mutates span content, retries
// a failed export, or buffers records for replay.
//
// Usage:
//
//	proc, err := partialspan.NewProcessor(partialspan.Config{
//	    LogExporter:           otlphttp.New(...),
//	    Serializer:            envelope.NewJSONSerializer(),
//	    HeartbeatInterval:     5 * time.Second,
//	    InitialHeartbeatDelay: 10 * time.Second,
//	    ProcessInterval:       time.Second,
//	})
//	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(proc))
package partialspan
