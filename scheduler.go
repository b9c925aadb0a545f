package partialspan

import (
	"context"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// runScheduler is the processor's background loop: a ticker fires every
// ProcessInterval and each tick drains due work from the delayed queue, then
// the ready queue, emitting a heartbeat for every span that is still active.
// A recover() wraps the body of each tick so a bug in a Serializer or
// LogExporter can never take down the host process (the spec's
// BackgroundPanic error kind); the panic is logged and the loop continues.
func (p *Processor) runScheduler() {
	defer close(p.schedulerDone)

	ticker := time.NewTicker(p.cfg.ProcessInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopScheduler:
			return
		case now := <-ticker.C:
			p.tick(now)
		}
	}
}

func (p *Processor) tick(now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			if p.cfg.Logger != nil {
				p.cfg.Logger.Error("recovered from panic in scheduler tick", nil, map[string]interface{}{
					"panic": r,
				})
			}
		}
	}()

	start := time.Now()

	p.mu.Lock()
	toEmit := p.drainDelayed(now)
	toEmit = append(toEmit, p.drainReady(now)...)
	activeCount := p.registry.size()
	p.mu.Unlock()

	if p.activeSpans != nil {
		p.activeSpans.Set(float64(activeCount))
	}

	for _, span := range toEmit {
		p.emit(context.Background(), span, SignalHeartbeat)
	}

	if p.tickDuration != nil {
		p.tickDuration.Observe(time.Since(start).Seconds())
	}
}

// drainDelayed pops every delayed-queue entry due at or before now. A span
// still present in the registry is promoted into the ready queue at
// now+HeartbeatInterval and collected for an immediate heartbeat; a span
// that ended before its delay elapsed was already removed from the registry
// by OnEnd, so it is silently dropped here (a tombstoned entry). Caller must
// hold p.mu.
func (p *Processor) drainDelayed(now time.Time) []sdktrace.ReadWriteSpan {
	var toEmit []sdktrace.ReadWriteSpan
	for {
		entry, ok := p.delayedQ.peekDue(now)
		if !ok {
			return toEmit
		}
		p.delayedQ.pop()
		p.delayedIdx.remove(entry.spanID)

		span, active := p.registry.lookup(entry.spanID)
		if !active {
			continue
		}
		p.readyQ.push(scheduleEntry{spanID: entry.spanID, dueAt: now.Add(p.cfg.HeartbeatInterval)})
		toEmit = append(toEmit, span)
	}
}

// drainReady pops every ready-queue entry due at or before now. A span still
// present in the registry is re-enqueued for the next cadence and collected
// for a heartbeat; otherwise its entry is a tombstone left by OnEnd and is
// dropped. Caller must hold p.mu.
func (p *Processor) drainReady(now time.Time) []sdktrace.ReadWriteSpan {
	var toEmit []sdktrace.ReadWriteSpan
	for {
		entry, ok := p.readyQ.peekDue(now)
		if !ok {
			return toEmit
		}
		p.readyQ.pop()

		span, active := p.registry.lookup(entry.spanID)
		if !active {
			continue
		}
		p.readyQ.push(scheduleEntry{spanID: entry.spanID, dueAt: now.Add(p.cfg.HeartbeatInterval)})
		toEmit = append(toEmit, span)
	}
}
