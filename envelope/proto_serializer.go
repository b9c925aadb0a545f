package envelope

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/otelpartial/partialspan"
	"github.com/otelpartial/partialspan/schema_registry"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// bodyTypeProtobuf is the partial.body.type attribute value for records
// produced by ProtoSerializer.
const bodyTypeProtobuf = "protobuf/v1"

// protoSchema is a placeholder proto3 IDL registered once against the
// schema registry at construction time, so every record this serializer
// produces references the same schema id.
const protoSchema = `syntax = "proto3";

message PartialSpan {
  bytes trace_id = 1;
  bytes span_id = 2;
  bytes parent_span_id = 3;
  int32 kind = 4;
  uint64 start_time_unix_nano = 5;
  uint64 end_time_unix_nano = 6;
  int32 status_code = 7;
  string name = 8;
  string partial_event = 9;
}`

// ProtoSerializer is the binary-envelope partialspan.Serializer variant: it
// encodes the span into a compact, schema-registry-resolved binary blob
// (Confluent wire format: a 5-byte header carrying the registered schema id,
// followed by the encoded payload) and base64-encodes the result so it can
// travel as a Record.Body string alongside JSONSerializer's output.
type ProtoSerializer struct {
	wrapped *schema_registry.ProtobufSerializer
}

// NewProtoSerializer registers the partial-span proto schema against
// registry under subject and returns a serializer that encodes every span
// it is given with it.
func NewProtoSerializer(registry schema_registry.Registry, subject string) (*ProtoSerializer, error) {
	wrapped, err := schema_registry.NewProtobufSerializer(schema_registry.ProtobufSerializerConfig{
		Registry:    registry,
		Subject:     subject,
		Schema:      protoSchema,
		MarshalFunc: marshalSpan,
	})
	if err != nil {
		return nil, fmt.Errorf("envelope: construct protobuf serializer: %w", err)
	}
	return &ProtoSerializer{wrapped: wrapped}, nil
}

func (p *ProtoSerializer) Serialize(span sdktrace.ReadOnlySpan, signal partialspan.Signal) (string, error) {
	encoded, err := p.wrapped.Serialize(protoSpan{span: span, signal: signal})
	if err != nil {
		return "", fmt.Errorf("envelope: serialize protobuf body: %w", err)
	}
	return base64.StdEncoding.EncodeToString(encoded), nil
}

// protoSpan bundles the data marshalSpan needs; it is passed through
// schema_registry.Serializer.Serialize as an opaque interface{}.
type protoSpan struct {
	span   sdktrace.ReadOnlySpan
	signal partialspan.Signal
}

// marshalSpan hand-encodes a protoSpan into the wire layout described by
// protoSchema's field numbers, since no protoc-generated code is available
// in this module: fixed-width fields in field-number order, each string or
// bytes field prefixed with a uint32 length.
func marshalSpan(v interface{}) ([]byte, error) {
	ps, ok := v.(protoSpan)
	if !ok {
		return nil, fmt.Errorf("envelope: marshalSpan expects protoSpan, got %T", v)
	}
	span := ps.span
	sc := span.SpanContext()

	traceID := sc.TraceID()
	spanID := sc.SpanID()
	var parentID [8]byte
	if parent := span.Parent(); parent.IsValid() {
		parentID = parent.SpanID()
	}

	buf := make([]byte, 0, 64+len(span.Name()))
	buf = appendBytesField(buf, traceID[:])
	buf = appendBytesField(buf, spanID[:])
	buf = appendBytesField(buf, parentID[:])
	buf = binary.BigEndian.AppendUint32(buf, uint32(span.SpanKind()))
	buf = binary.BigEndian.AppendUint64(buf, uint64(span.StartTime().UnixNano()))
	var endNano uint64
	if ps.signal == partialspan.SignalStop && !span.EndTime().IsZero() {
		endNano = uint64(span.EndTime().UnixNano())
	}
	buf = binary.BigEndian.AppendUint64(buf, endNano)
	buf = binary.BigEndian.AppendUint32(buf, uint32(statusCode(span.Status().Code)))
	buf = appendStringField(buf, span.Name())
	buf = appendStringField(buf, ps.signal.String())

	return buf, nil
}

func appendBytesField(buf, field []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(field)))
	return append(buf, field...)
}

func appendStringField(buf []byte, s string) []byte {
	return appendBytesField(buf, []byte(s))
}

// BodyType reports the partial.body.type attribute value for records this
// serializer produces.
func (p *ProtoSerializer) BodyType() string { return bodyTypeProtobuf }

var _ partialspan.Serializer = (*ProtoSerializer)(nil)
