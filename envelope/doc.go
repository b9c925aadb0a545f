// Package envelope implements the wire body the partial span processor
// attaches to each log record: a JSON document shaped like the OTLP trace
// protocol's resource_spans/scope_spans/spans tree, carrying exactly the
// one span the record is about.
//
// JSONSerializer is the default; ProtoSerializer produces a base64-encoded
// binary blob registered against a schema_registry-style registry, for
// deployments that prefer a compact wire format over a human-readable one.
package envelope
