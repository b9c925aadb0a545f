package partialspan

import (
	"time"

	"github.com/otelpartial/partialspan/logger"
	"github.com/otelpartial/partialspan/metrics"
	"github.com/otelpartial/partialspan/observability"
	"go.opentelemetry.io/otel/sdk/resource"
)

// Config configures a Processor. LogExporter and Serializer are required;
// everything else has a documented default.
type Config struct {
	// LogExporter receives every heartbeat and stop record. The processor
	// treats it as an opaque, best-effort collaborator: a failed Export call
	// is logged and counted, never retried.
	LogExporter LogExporter

	// Serializer converts a span snapshot plus a Signal into the body string
	// carried on the log record. See the envelope package for the default
	// JSON implementation.
	Serializer Serializer

	// HeartbeatInterval is the steady-state cadence at which a heartbeat is
	// re-emitted for a span once it has left its initial delay window. Must
	// be greater than zero.
	HeartbeatInterval time.Duration

	// InitialHeartbeatDelay is how long a span must remain open before its
	// first heartbeat is emitted. Spans shorter than this delay produce no
	// records at all: no heartbeat and no stop record. Zero means no delay: the
	// first heartbeat fires on the next scheduler tick after OnStart.
	InitialHeartbeatDelay time.Duration

	// ProcessInterval is how often the scheduler wakes to drain due work.
	// Smaller values reduce heartbeat jitter at the cost of more wakeups.
	// Defaults to HeartbeatInterval / 10, floored at 10ms, when zero; zero
	// is read as "unset", not as a request to busy-poll (see withDefaults).
	ProcessInterval time.Duration

	// Resource is attached to every record produced by this processor. It
	// is frequently not known at construction time (the host TracerProvider
	// builds its Resource independently); call Processor.SetResource before
	// the first span starts to bind it, or leave nil to fall back to
	// resource.Default().
	Resource *resource.Resource

	// Logger receives BackgroundPanic recoveries and lifecycle events.
	// Optional; a nil Logger disables logging entirely.
	Logger logger.Logger

	// Metrics receives counters/gauges/histograms for emitted records,
	// active span count, and scheduler tick duration. Optional.
	Metrics metrics.MetricsCollector

	// Observer is invoked once per emit attempt with the outcome. Optional.
	Observer observability.Observer
}

const (
	defaultProcessIntervalFloor = 10 * time.Millisecond
)

func (c Config) validate() error {
	if c.LogExporter == nil {
		return invalidArgument("LogExporter", "must not be nil")
	}
	if c.Serializer == nil {
		return invalidArgument("Serializer", "must not be nil")
	}
	if c.HeartbeatInterval <= 0 {
		return invalidArgument("HeartbeatInterval", "must be greater than zero")
	}
	if c.InitialHeartbeatDelay < 0 {
		return invalidArgument("InitialHeartbeatDelay", "must not be negative")
	}
	if c.ProcessInterval < 0 {
		return invalidArgument("ProcessInterval", "must not be negative")
	}
	return nil
}

// withDefaults treats a zero ProcessInterval as "unset, pick a sane
// default" rather than "busy-poll the scheduler", deliberately choosing one
// reading over the other because time.Duration's zero value can't carry
// both meanings at once the way a nullable/optional field in other
// languages could. A caller that genuinely wants the tightest possible
// responsiveness should pass a small explicit duration (e.g. 1ms) instead of
// the zero value; ProcessInterval's validation only rejects negative
// values, so that remains available.
func (c Config) withDefaults() Config {
	if c.ProcessInterval == 0 {
		c.ProcessInterval = c.HeartbeatInterval / 10
		if c.ProcessInterval < defaultProcessIntervalFloor {
			c.ProcessInterval = defaultProcessIntervalFloor
		}
	}
	if c.Resource == nil {
		c.Resource = resource.Default()
	}
	return c
}
