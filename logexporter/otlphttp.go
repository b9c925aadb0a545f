package logexporter

import (
	"context"
	"fmt"
	"time"

	"github.com/otelpartial/partialspan"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// OTLPHTTPConfig configures the OTLP/HTTP log exporter adapter.
type OTLPHTTPConfig struct {
	// Endpoint is the collector's OTLP/HTTP logs endpoint host:port, e.g.
	// "otel-collector:4318". Required.
	Endpoint string

	// Insecure disables TLS, for local/collector-sidecar deployments.
	Insecure bool

	// Headers are sent with every export request (e.g. auth tokens).
	Headers map[string]string
}

// OTLPHTTP wraps go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp
// as a partialspan.LogExporter.
type OTLPHTTP struct {
	exporter sdklog.Exporter
}

// NewOTLPHTTP constructs an OTLP/HTTP log exporter adapter.
func NewOTLPHTTP(ctx context.Context, cfg OTLPHTTPConfig) (*OTLPHTTP, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("logexporter: OTLPHTTPConfig.Endpoint must not be empty")
	}

	opts := []otlploghttp.Option{otlploghttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlploghttp.WithInsecure())
	}
	if len(cfg.Headers) > 0 {
		opts = append(opts, otlploghttp.WithHeaders(cfg.Headers))
	}

	exp, err := otlploghttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("logexporter: construct otlploghttp exporter: %w", err)
	}
	return &OTLPHTTP{exporter: exp}, nil
}

func (o *OTLPHTTP) Export(ctx context.Context, records []partialspan.Record) error {
	return o.exporter.Export(ctx, toSDKRecords(records))
}

func (o *OTLPHTTP) Shutdown(ctx context.Context, timeout time.Duration) bool {
	return shutdownWithTimeout(ctx, timeout, o.exporter.Shutdown)
}

// toSDKRecords converts the processor's own Record type into the real
// OTel logs SDK record type the otlploghttp/otlploggrpc exporters consume.
// Resource attributes are carried as ordinary log attributes (prefixed)
// rather than through the SDK's LoggerProvider-owned Resource binding,
// since these records are built by hand outside of any LoggerProvider.
func toSDKRecords(records []partialspan.Record) []sdklog.Record {
	out := make([]sdklog.Record, 0, len(records))
	for _, r := range records {
		var rec sdklog.Record
		rec.SetTimestamp(r.Timestamp)
		rec.SetObservedTimestamp(r.Timestamp)
		rec.SetSeverity(otellog.SeverityInfo)
		rec.SetBody(otellog.StringValue(r.Body))
		rec.SetTraceID(r.TraceID)
		rec.SetSpanID(r.SpanID)

		attrs := make([]otellog.KeyValue, 0, len(r.Attributes)+len(r.Resource))
		for k, v := range r.Attributes {
			attrs = append(attrs, otellog.String(k, v))
		}
		for k, v := range r.Resource {
			attrs = append(attrs, otellog.String("resource."+k, v))
		}
		rec.AddAttributes(attrs...)

		out = append(out, rec)
	}
	return out
}

// shutdownWithTimeout runs shutdown with a context bounded by timeout
// (timeout < 0 means no bound) and reports whether it completed before the
// bound expired.
func shutdownWithTimeout(ctx context.Context, timeout time.Duration, shutdown func(context.Context) error) bool {
	if timeout >= 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	err := shutdown(ctx)
	return err == nil
}

var _ partialspan.LogExporter = (*OTLPHTTP)(nil)
