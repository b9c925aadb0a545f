package partialspan

import (
	"time"

	"github.com/eapache/queue"
	"go.opentelemetry.io/otel/trace"
)

// scheduleEntry is one item in either the delayed or ready queue: a span id
// due for attention at dueAt. Both queues are FIFO by construction (entries
// are always appended with a dueAt greater than or equal to every entry
// already in the queue, since both the initial delay and the heartbeat
// interval are fixed per processor), so time order and insertion order
// coincide and a plain ring-buffer queue is sufficient; no heap is needed.
type scheduleEntry struct {
	spanID trace.SpanID
	dueAt  time.Time
}

// timeQueue is a FIFO queue of scheduleEntry values, backed by
// github.com/eapache/queue's ring buffer. Like spanRegistry, it does not
// lock itself; callers hold the owning Processor's mutex.
type timeQueue struct {
	q *queue.Queue
}

func newTimeQueue() *timeQueue {
	return &timeQueue{q: queue.New()}
}

func (t *timeQueue) push(e scheduleEntry) {
	t.q.Add(e)
}

// peekDue returns the oldest entry and true if it is due at or before now,
// without removing it.
func (t *timeQueue) peekDue(now time.Time) (scheduleEntry, bool) {
	if t.q.Length() == 0 {
		return scheduleEntry{}, false
	}
	e := t.q.Peek().(scheduleEntry)
	if e.dueAt.After(now) {
		return scheduleEntry{}, false
	}
	return e, true
}

func (t *timeQueue) pop() scheduleEntry {
	return t.q.Remove().(scheduleEntry)
}

func (t *timeQueue) len() int {
	return t.q.Length()
}

// delayedIndex is the membership set described in the data model: it exists
// so OnEnd can determine in O(1), under the shared mutex, whether a span is
// still sitting in the delay window (and therefore must not emit a stop
// record per the suppression rule) without scanning the delayed queue.
type delayedIndex struct {
	ids map[trace.SpanID]struct{}
}

func newDelayedIndex() *delayedIndex {
	return &delayedIndex{ids: make(map[trace.SpanID]struct{})}
}

func (d *delayedIndex) add(id trace.SpanID) {
	d.ids[id] = struct{}{}
}

func (d *delayedIndex) remove(id trace.SpanID) {
	delete(d.ids, id)
}

// removeAndCheck removes id and reports whether it was present beforehand.
func (d *delayedIndex) removeAndCheck(id trace.SpanID) bool {
	_, present := d.ids[id]
	delete(d.ids, id)
	return present
}
