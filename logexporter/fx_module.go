package logexporter

import (
	"context"
	"fmt"
	"time"

	"github.com/otelpartial/partialspan"
	"go.uber.org/fx"
)

// Kind selects which transport adapter FXModule constructs.
type Kind string

const (
	KindOTLPHTTP Kind = "otlphttp"
	KindOTLPGRPC Kind = "otlpgrpc"
	KindKafka    Kind = "kafka"
)

// Config selects and configures one log exporter adapter.
type Config struct {
	Kind     Kind
	OTLPHTTP OTLPHTTPConfig
	OTLPGRPC OTLPGRPCConfig
	Kafka    KafkaConfig
}

// FXModule provides a partialspan.LogExporter built from the supplied
// Config's Kind, following this repository's provide-concrete-then-bind
// pattern.
var FXModule = fx.Module("logexporter",
	fx.Provide(NewExporterWithDI),
	fx.Invoke(RegisterExporterLifecycle),
)

// ExporterParams groups the dependencies needed to build the configured
// log exporter adapter.
type ExporterParams struct {
	fx.In

	Config Config
}

// NewExporterWithDI builds the adapter selected by params.Config.Kind and
// returns it as the partialspan.LogExporter interface other modules (such
// as partialspan.FXModule, via its own Config) depend on.
func NewExporterWithDI(params ExporterParams) (partialspan.LogExporter, error) {
	switch params.Config.Kind {
	case KindOTLPHTTP:
		return NewOTLPHTTP(context.Background(), params.Config.OTLPHTTP)
	case KindOTLPGRPC:
		return NewOTLPGRPC(context.Background(), params.Config.OTLPGRPC)
	case KindKafka:
		return NewKafka(params.Config.Kafka)
	default:
		return nil, fmt.Errorf("logexporter: unknown Kind %q", params.Config.Kind)
	}
}

// ExporterLifecycleParams groups the dependencies needed to shut the
// exporter down when the fx application stops.
type ExporterLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Exporter  partialspan.LogExporter
}

// RegisterExporterLifecycle shuts the exporter down when the fx application
// stops, honoring ctx's deadline as the shutdown timeout.
func RegisterExporterLifecycle(params ExporterLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			timeout := time.Duration(-1)
			if dl, ok := ctx.Deadline(); ok {
				timeout = time.Until(dl)
				if timeout < 0 {
					timeout = 0
				}
			}
			params.Exporter.Shutdown(ctx, timeout)
			return nil
		},
	})
}
