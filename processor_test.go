package partialspan

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// fakeExporter records every batch it receives; it is the test double for
// the LogExporter contract.
type fakeExporter struct {
	mu       sync.Mutex
	records  []Record
	rejectN  int // reject the next N Export calls with an error
	shutDown bool
}

func (f *fakeExporter) Export(_ context.Context, records []Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rejectN > 0 {
		f.rejectN--
		return assert.AnError
	}
	f.records = append(f.records, records...)
	return nil
}

func (f *fakeExporter) Shutdown(_ context.Context, _ time.Duration) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shutDown = true
	return true
}

func (f *fakeExporter) snapshot() []Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Record, len(f.records))
	copy(out, f.records)
	return out
}

func (f *fakeExporter) countSignal(sig string) int {
	n := 0
	for _, r := range f.snapshot() {
		if r.Attributes["partial.event"] == sig {
			n++
		}
	}
	return n
}

// fakeSerializer produces a fixed body tagged with the signal, so tests can
// assert on which signal produced which record without depending on the
// envelope package.
type fakeSerializer struct{}

func (fakeSerializer) Serialize(_ sdktrace.ReadOnlySpan, signal Signal) (string, error) {
	return signal.String(), nil
}

func (fakeSerializer) BodyType() string { return "fake/v1" }

func newTestProcessor(t *testing.T, exp *fakeExporter, heartbeat, delay, process time.Duration) (*Processor, *sdktrace.TracerProvider) {
	t.Helper()
	proc, err := NewProcessor(Config{
		LogExporter:           exp,
		Serializer:            fakeSerializer{},
		HeartbeatInterval:     heartbeat,
		InitialHeartbeatDelay: delay,
		ProcessInterval:       process,
	})
	require.NoError(t, err)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(proc))
	return proc, tp
}

func TestNewProcessor_ValidatesConfig(t *testing.T) {
	t.Parallel()

	_, err := NewProcessor(Config{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewProcessor(Config{LogExporter: &fakeExporter{}, Serializer: fakeSerializer{}})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewProcessor(Config{
		LogExporter:       &fakeExporter{},
		Serializer:        fakeSerializer{},
		HeartbeatInterval: time.Second,
	})
	assert.NoError(t, err)
}

// Seed test #1: a span that ends before its initial delay elapses produces
// no heartbeat and no stop record (the suppression rule).
func TestShortSpan_NoRecordsEmitted(t *testing.T) {
	t.Parallel()
	exp := &fakeExporter{}
	proc, tp := newTestProcessor(t, exp, 50*time.Millisecond, 200*time.Millisecond, 5*time.Millisecond)
	defer proc.Shutdown(context.Background())

	ctx := context.Background()
	_, span := tp.Tracer("test").Start(ctx, "short")
	time.Sleep(20 * time.Millisecond)
	span.End()

	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, exp.snapshot())
}

// Seed test #2: a span outliving the initial delay and several heartbeat
// intervals accumulates multiple heartbeats, then exactly one stop record.
func TestLongSpan_HeartbeatsThenStop(t *testing.T) {
	t.Parallel()
	exp := &fakeExporter{}
	proc, tp := newTestProcessor(t, exp, 20*time.Millisecond, 20*time.Millisecond, 5*time.Millisecond)
	defer proc.Shutdown(context.Background())

	ctx := context.Background()
	_, span := tp.Tracer("test").Start(ctx, "long")

	require.Eventually(t, func() bool {
		return exp.countSignal("heartbeat") >= 2
	}, time.Second, 5*time.Millisecond)

	span.End()

	require.Eventually(t, func() bool {
		return exp.countSignal("stop") == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 1, exp.countSignal("stop"))
}

// Seed test #3: two concurrently active spans are scheduled independently.
func TestConcurrentSpans_IndependentSchedules(t *testing.T) {
	t.Parallel()
	exp := &fakeExporter{}
	proc, tp := newTestProcessor(t, exp, 15*time.Millisecond, 15*time.Millisecond, 5*time.Millisecond)
	defer proc.Shutdown(context.Background())

	ctx := context.Background()
	_, spanA := tp.Tracer("test").Start(ctx, "a")
	time.Sleep(20 * time.Millisecond)
	_, spanB := tp.Tracer("test").Start(ctx, "b")

	require.Eventually(t, func() bool {
		return exp.countSignal("heartbeat") >= 3
	}, time.Second, 5*time.Millisecond)

	spanA.End()
	spanB.End()

	require.Eventually(t, func() bool {
		return exp.countSignal("stop") == 2
	}, time.Second, 5*time.Millisecond)
}

// Seed test #4: OnEnd is idempotent from the exporter's point of view: a
// span produces exactly one stop record even though the registry removal
// and the index check happen as two steps under the same lock.
func TestSpan_ExactlyOneStopRecord(t *testing.T) {
	t.Parallel()
	exp := &fakeExporter{}
	proc, tp := newTestProcessor(t, exp, 10*time.Millisecond, 10*time.Millisecond, 2*time.Millisecond)
	defer proc.Shutdown(context.Background())

	ctx := context.Background()
	_, span := tp.Tracer("test").Start(ctx, "once")
	time.Sleep(30 * time.Millisecond)
	span.End()

	require.Eventually(t, func() bool {
		return exp.countSignal("stop") >= 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, exp.countSignal("stop"))
}

// Seed test #5: Shutdown is idempotent-safe: a second call reports
// ErrAlreadyShutDown rather than blocking or panicking.
func TestShutdown_Idempotent(t *testing.T) {
	t.Parallel()
	exp := &fakeExporter{}
	proc, _ := newTestProcessor(t, exp, 10*time.Millisecond, 10*time.Millisecond, 2*time.Millisecond)

	require.NoError(t, proc.Shutdown(context.Background()))
	assert.ErrorIs(t, proc.Shutdown(context.Background()), ErrAlreadyShutDown)
	assert.True(t, exp.shutDown)
}

// A zero-timeout shutdown (an already-expired deadline) must not join the
// scheduler thread and must return promptly, per the shutdown(timeout_ms=0)
// contract; ErrShutdownIncomplete reports that the scheduler wasn't joined.
func TestShutdown_ZeroTimeoutDoesNotJoin(t *testing.T) {
	t.Parallel()
	exp := &fakeExporter{}
	proc, _ := newTestProcessor(t, exp, 10*time.Millisecond, 10*time.Millisecond, 2*time.Millisecond)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- proc.Shutdown(ctx) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrShutdownIncomplete)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Shutdown with a zero timeout blocked instead of returning immediately")
	}
}

// Seed test #6: an exporter rejection for one record does not stop the
// scheduler from attempting to emit subsequent heartbeats.
func TestExporterRejection_DoesNotStopScheduler(t *testing.T) {
	t.Parallel()
	exp := &fakeExporter{rejectN: 1}
	proc, tp := newTestProcessor(t, exp, 10*time.Millisecond, 10*time.Millisecond, 2*time.Millisecond)
	defer proc.Shutdown(context.Background())

	ctx := context.Background()
	_, span := tp.Tracer("test").Start(ctx, "rejected-first")
	defer span.End()

	require.Eventually(t, func() bool {
		return exp.countSignal("heartbeat") >= 2
	}, time.Second, 5*time.Millisecond)
}

// Every record, heartbeat or stop, carries partial.body.type; only
// heartbeats carry partial.frequency.
func TestEmit_AttributePlacement(t *testing.T) {
	t.Parallel()
	exp := &fakeExporter{}
	proc, tp := newTestProcessor(t, exp, 10*time.Millisecond, 10*time.Millisecond, 2*time.Millisecond)
	defer proc.Shutdown(context.Background())

	ctx := context.Background()
	_, span := tp.Tracer("test").Start(ctx, "attrs")

	require.Eventually(t, func() bool {
		return exp.countSignal("heartbeat") >= 1
	}, time.Second, 5*time.Millisecond)

	span.End()

	require.Eventually(t, func() bool {
		return exp.countSignal("stop") == 1
	}, time.Second, 5*time.Millisecond)

	for _, r := range exp.snapshot() {
		assert.Equal(t, "fake/v1", r.Attributes["partial.body.type"])
		switch r.Attributes["partial.event"] {
		case "heartbeat":
			assert.NotEmpty(t, r.Attributes["partial.frequency"])
		case "stop":
			assert.NotContains(t, r.Attributes, "partial.frequency")
		}
	}
}

func TestForceFlush_NoOp(t *testing.T) {
	t.Parallel()
	exp := &fakeExporter{}
	proc, _ := newTestProcessor(t, exp, 10*time.Millisecond, 10*time.Millisecond, 2*time.Millisecond)
	defer proc.Shutdown(context.Background())

	assert.NoError(t, proc.ForceFlush(context.Background()))
}
