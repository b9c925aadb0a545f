package envelope

import (
	"github.com/otelpartial/partialspan"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Envelope is the top-level JSON document produced by JSONSerializer. Its
// shape intentionally mirrors the OTLP/JSON trace export format's
// resource_spans/scope_spans/spans tree, restricted to the single span the
// record describes, so a collector already parsing OTLP/JSON trace exports
// can reuse the same decoder for partial-span log bodies.
type Envelope struct {
	ResourceSpans []ResourceSpans `json:"resource_spans"`
}

type ResourceSpans struct {
	Resource   Resource     `json:"resource"`
	ScopeSpans []ScopeSpans `json:"scope_spans"`
}

type Resource struct {
	Attributes []KeyValue `json:"attributes,omitempty"`
}

type ScopeSpans struct {
	Scope InstrumentationScope `json:"scope"`
	Spans []Span               `json:"spans"`
}

type InstrumentationScope struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type Span struct {
	TraceID           string     `json:"trace_id"`
	SpanID            string     `json:"span_id"`
	TraceState        string     `json:"trace_state,omitempty"`
	ParentSpanID      string     `json:"parent_span_id,omitempty"`
	Flags             uint32     `json:"flags,omitempty"`
	Name              string     `json:"name"`
	Kind              int        `json:"kind"`
	StartTimeUnixNano uint64     `json:"start_time_unix_nano"`
	EndTimeUnixNano   uint64     `json:"end_time_unix_nano,omitempty"`
	Attributes        []KeyValue `json:"attributes,omitempty"`
	Events            []Event    `json:"events,omitempty"`
	Links             []Link     `json:"links,omitempty"`
	Status            Status     `json:"status"`

	// PartialEvent and PartialBodyType surface the signal and body type of
	// this record directly on the span body, in addition to the
	// partial.event/partial.body.type attributes the processor attaches to
	// the record itself, so a body alone (without the surrounding record
	// attributes) is still self-describing.
	PartialEvent    string `json:"partial_event"`
	PartialBodyType string `json:"partial_body_type"`
}

type Event struct {
	TimeUnixNano uint64     `json:"time_unix_nano"`
	Name         string     `json:"name"`
	Attributes   []KeyValue `json:"attributes,omitempty"`
}

type Link struct {
	TraceID    string     `json:"trace_id"`
	SpanID     string     `json:"span_id"`
	Attributes []KeyValue `json:"attributes,omitempty"`
}

type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

type KeyValue struct {
	Key   string   `json:"key"`
	Value AnyValue `json:"value"`
}

type AnyValue struct {
	StringValue *string  `json:"string_value,omitempty"`
	IntValue    *int64   `json:"int_value,omitempty"`
	DoubleValue *float64 `json:"double_value,omitempty"`
	BoolValue   *bool    `json:"bool_value,omitempty"`
}

// statusCode maps an OTel API codes.Code (Unset=0, Error=1, Ok=2 in the
// otel/codes package) onto the OTLP wire protocol's STATUS_CODE enum
// (Unset=0, Ok=1, Error=2). The two enums are NOT the same order; a bare
// int(c) cast here would silently swap Ok and Error on the wire.
func statusCode(c codes.Code) int {
	switch c {
	case codes.Ok:
		return 1
	case codes.Error:
		return 2
	default:
		return 0
	}
}

func toAnyValue(v attribute.Value) AnyValue {
	switch v.Type() {
	case attribute.BOOL:
		b := v.AsBool()
		return AnyValue{BoolValue: &b}
	case attribute.INT64:
		i := v.AsInt64()
		return AnyValue{IntValue: &i}
	case attribute.FLOAT64:
		f := v.AsFloat64()
		return AnyValue{DoubleValue: &f}
	default:
		s := v.Emit()
		return AnyValue{StringValue: &s}
	}
}

func toKeyValues(attrs []attribute.KeyValue) []KeyValue {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]KeyValue, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, KeyValue{Key: string(a.Key), Value: toAnyValue(a.Value)})
	}
	return out
}

// buildSpan maps a live span snapshot onto the wire Span shape shared by
// both serializers. EndTimeUnixNano is gated on signal, not on the span's
// live end-time state: a span can already have a non-zero EndTime() by the
// time a heartbeat for it is serialized (the on_end/tick race described in
// the scheduler's drain functions), and a heartbeat must never carry an end
// time regardless.
func buildSpan(span sdktrace.ReadOnlySpan, signal partialspan.Signal, bodyType string) Span {
	sc := span.SpanContext()
	status := span.Status()

	s := Span{
		TraceID:           sc.TraceID().String(),
		SpanID:            sc.SpanID().String(),
		Flags:             uint32(sc.TraceFlags()),
		Name:              span.Name(),
		Kind:              int(span.SpanKind()),
		StartTimeUnixNano: uint64(span.StartTime().UnixNano()),
		Attributes:        toKeyValues(span.Attributes()),
		Status:            Status{Code: statusCode(status.Code), Message: status.Description},
		PartialEvent:      signal.String(),
		PartialBodyType:   bodyType,
	}

	if ts := sc.TraceState().String(); ts != "" {
		s.TraceState = ts
	}
	if parent := span.Parent(); parent.IsValid() {
		s.ParentSpanID = parent.SpanID().String()
	}
	if signal == partialspan.SignalStop && !span.EndTime().IsZero() {
		s.EndTimeUnixNano = uint64(span.EndTime().UnixNano())
	}

	for _, ev := range span.Events() {
		s.Events = append(s.Events, Event{
			TimeUnixNano: uint64(ev.Time.UnixNano()),
			Name:         ev.Name,
			Attributes:   toKeyValues(ev.Attributes),
		})
	}
	for _, link := range span.Links() {
		s.Links = append(s.Links, Link{
			TraceID:    link.SpanContext.TraceID().String(),
			SpanID:     link.SpanContext.SpanID().String(),
			Attributes: toKeyValues(link.Attributes),
		})
	}

	return s
}

func buildEnvelope(span sdktrace.ReadOnlySpan, signal partialspan.Signal, bodyType string) Envelope {
	scope := span.InstrumentationScope()
	return Envelope{
		ResourceSpans: []ResourceSpans{{
			Resource: Resource{Attributes: toKeyValues(span.Resource().Attributes())},
			ScopeSpans: []ScopeSpans{{
				Scope: InstrumentationScope{Name: scope.Name, Version: scope.Version},
				Spans: []Span{buildSpan(span, signal, bodyType)},
			}},
		}},
	}
}
