package partialspan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/sdk/resource"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Processor is a sdktrace.SpanProcessor that emits periodic heartbeat
// records for every open span and a single stop record when it ends. A
// Processor must be constructed with NewProcessor; the zero value is not
// usable.
type Processor struct {
	cfg Config

	mu         sync.Mutex
	registry   *spanRegistry
	delayedQ   *timeQueue
	readyQ     *timeQueue
	delayedIdx *delayedIndex
	resource   *resource.Resource
	shutDown   bool

	stopScheduler chan struct{}
	schedulerDone chan struct{}

	heartbeatsEmitted metricCounter
	stopsEmitted      metricCounter
	exporterErrors    metricCounter
	activeSpans       metricGauge
	tickDuration      metricObserver
}

// metricCounter/metricGauge/metricObserver are the minimal surfaces this
// package needs from metrics.Counter/Gauge/Observer; keeping them narrow
// lets Processor stay agnostic of the metrics package's Vec types.
type metricCounter interface{ Inc() }
type metricGauge interface{ Set(float64) }
type metricObserver interface{ Observe(float64) }

// NewProcessor validates cfg and returns a Processor with its scheduler loop
// already running. Callers must call Shutdown to release the scheduler
// goroutine and the configured LogExporter.
func NewProcessor(cfg Config) (*Processor, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	p := &Processor{
		cfg:           cfg,
		registry:      newSpanRegistry(),
		delayedQ:      newTimeQueue(),
		readyQ:        newTimeQueue(),
		delayedIdx:    newDelayedIndex(),
		resource:      cfg.Resource,
		stopScheduler: make(chan struct{}),
		schedulerDone: make(chan struct{}),
	}

	if cfg.Metrics != nil {
		p.heartbeatsEmitted = cfg.Metrics.CreateCounter(
			"partialspan_heartbeats_emitted_total", "Heartbeat records emitted by the partial span processor", nil)
		p.stopsEmitted = cfg.Metrics.CreateCounter(
			"partialspan_stops_emitted_total", "Stop records emitted by the partial span processor", nil)
		p.exporterErrors = cfg.Metrics.CreateCounter(
			"partialspan_exporter_errors_total", "Log exporter Export calls that returned an error", nil)
		p.activeSpans = cfg.Metrics.CreateGauge(
			"partialspan_active_spans", "Spans currently tracked by the partial span processor", nil)
		p.tickDuration = cfg.Metrics.CreateHistogram(
			"partialspan_scheduler_tick_duration_seconds", "Wall time spent draining due work each scheduler tick",
			nil, []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1})
	}

	if p.cfg.Logger != nil {
		p.cfg.Logger.Info("partial span processor started", nil, map[string]interface{}{
			"heartbeat_interval_ms":      cfg.HeartbeatInterval.Milliseconds(),
			"initial_heartbeat_delay_ms": cfg.InitialHeartbeatDelay.Milliseconds(),
			"process_interval_ms":        cfg.ProcessInterval.Milliseconds(),
		})
	}

	go p.runScheduler()

	return p, nil
}

// SetResource binds the Resource attached to every record this processor
// emits from this point on. It is safe to call exactly once, before the
// first span starts; the host integration (see the tracer package) calls it
// as soon as its own Resource is constructed. Calling it after spans have
// already been emitted changes the Resource used by subsequent emissions
// only.
func (p *Processor) SetResource(r *resource.Resource) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resource = r
}

// OnStart registers span in the active registry and schedules its initial
// heartbeat delay. It never blocks on I/O and never emits a record directly;
// emission is always performed by the scheduler loop.
func (p *Processor) OnStart(_ context.Context, span sdktrace.ReadWriteSpan) {
	id := span.SpanContext().SpanID()
	now := time.Now()

	p.mu.Lock()
	p.registry.insert(id, span)
	p.delayedQ.push(scheduleEntry{spanID: id, dueAt: now.Add(p.cfg.InitialHeartbeatDelay)})
	p.delayedIdx.add(id)
	p.mu.Unlock()
}

// OnEnd removes span from the active registry and, unless it was still
// sitting inside its initial delay window (in which case no heartbeat has
// ever been emitted for it and a stop record would be the span's only
// record, which this processor intentionally suppresses — see variant (b)
// in the design notes), emits a stop record for it.
func (p *Processor) OnEnd(span sdktrace.ReadOnlySpan) {
	id := span.SpanContext().SpanID()

	p.mu.Lock()
	wasInDelay := p.delayedIdx.removeAndCheck(id)
	p.registry.remove(id)
	p.mu.Unlock()

	if wasInDelay {
		return
	}
	p.emit(context.Background(), span, SignalStop)
}

// Shutdown signals the scheduler to exit, joins it within ctx's deadline
// (derived as a timeout the same way the logexporter fx lifecycle hooks
// do), then forwards shutdown to the configured LogExporter with whatever
// budget remains. A zero timeout (an already-expired or zero-deadline ctx)
// skips joining the scheduler entirely and calls the exporter's Shutdown
// with a zero timeout too, matching the "do not wait" contract; a ctx with
// no deadline waits unbounded for both. Calling Shutdown more than once
// returns ErrAlreadyShutDown; if the scheduler doesn't join in time or the
// exporter reports an unclean shutdown, Shutdown returns
// ErrShutdownIncomplete.
func (p *Processor) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.shutDown {
		p.mu.Unlock()
		return ErrAlreadyShutDown
	}
	p.shutDown = true
	p.mu.Unlock()

	start := time.Now()
	var timeout time.Duration
	if dl, ok := ctx.Deadline(); ok {
		timeout = time.Until(dl)
		if timeout < 0 {
			timeout = 0
		}
	} else {
		timeout = -1
	}

	close(p.stopScheduler)

	joined := true
	switch {
	case timeout == 0:
		joined = false
	case timeout < 0:
		<-p.schedulerDone
	default:
		select {
		case <-p.schedulerDone:
		case <-time.After(timeout):
			joined = false
		}
	}

	exporterTimeout := timeout
	if timeout > 0 {
		exporterTimeout -= time.Since(start)
		if exporterTimeout < 0 {
			exporterTimeout = 0
		}
	}

	clean := p.cfg.LogExporter.Shutdown(ctx, exporterTimeout)
	if p.cfg.Logger != nil {
		p.cfg.Logger.Info("partial span processor shut down", nil, map[string]interface{}{
			"scheduler_joined": joined,
			"exporter_clean":   clean,
		})
	}

	if !joined || !clean {
		return fmt.Errorf("%w: scheduler_joined=%v exporter_clean=%v", ErrShutdownIncomplete, joined, clean)
	}
	return nil
}

// ForceFlush is a no-op: the processor never buffers a record past the
// emit call that produced it, so there is nothing to flush locally. It
// exists to satisfy sdktrace.SpanProcessor.
func (p *Processor) ForceFlush(_ context.Context) error {
	return nil
}

var _ sdktrace.SpanProcessor = (*Processor)(nil)
