package logexporter

import (
	"context"
	"fmt"
	"time"

	"github.com/otelpartial/partialspan"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// OTLPGRPCConfig configures the OTLP/gRPC log exporter adapter.
type OTLPGRPCConfig struct {
	// Endpoint is the collector's OTLP/gRPC endpoint host:port. Required.
	Endpoint string

	// Insecure disables TLS.
	Insecure bool

	// Headers are sent as gRPC metadata with every export call.
	Headers map[string]string
}

// OTLPGRPC wraps go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc
// as a partialspan.LogExporter.
type OTLPGRPC struct {
	exporter sdklog.Exporter
}

// NewOTLPGRPC constructs an OTLP/gRPC log exporter adapter.
func NewOTLPGRPC(ctx context.Context, cfg OTLPGRPCConfig) (*OTLPGRPC, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("logexporter: OTLPGRPCConfig.Endpoint must not be empty")
	}

	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}
	if len(cfg.Headers) > 0 {
		opts = append(opts, otlploggrpc.WithHeaders(cfg.Headers))
	}

	exp, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("logexporter: construct otlploggrpc exporter: %w", err)
	}
	return &OTLPGRPC{exporter: exp}, nil
}

func (o *OTLPGRPC) Export(ctx context.Context, records []partialspan.Record) error {
	return o.exporter.Export(ctx, toSDKRecords(records))
}

func (o *OTLPGRPC) Shutdown(ctx context.Context, timeout time.Duration) bool {
	return shutdownWithTimeout(ctx, timeout, o.exporter.Shutdown)
}

var _ partialspan.LogExporter = (*OTLPGRPC)(nil)
