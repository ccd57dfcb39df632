package animwait

import (
	"context"
	"errors"
	"hash/crc32"
	"sync"
	"testing"
	"time"
)

// fakeAnimator advances one layer's normalized time on every CurrentState
// call, like a clock ticking once per poll.
type fakeAnimator struct {
	mu      sync.Mutex
	enabled bool
	state   int32
	time    float32
	step    float32
	layers  []int
}

func (f *fakeAnimator) Enabled() bool { return f.enabled }

func (f *fakeAnimator) CurrentState(layer int) StateInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.layers = append(f.layers, layer)
	s := StateInfo{ShortNameHash: f.state, NormalizedTime: f.time}
	f.time += f.step
	return s
}

func (f *fakeAnimator) polls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.layers)
}

func TestNameHash(t *testing.T) {
	for _, name := range []string{"", "Idle", "Base Layer.Run"} {
		if got, want := NameHash(name), int32(crc32.ChecksumIEEE([]byte(name))); got != want {
			t.Errorf("NameHash(%q) = %d, want %d", name, got, want)
		}
	}
	if NameHash("Idle") == NameHash("Run") {
		t.Error("different names should hash differently")
	}
}

func TestWaitNilSource(t *testing.T) {
	if err := Wait(context.Background(), nil); !errors.Is(err, ErrNilSource) {
		t.Errorf("Wait(nil) = %v, want ErrNilSource", err)
	}
	var a *fakeAnimator
	if err := Wait(context.Background(), a); !errors.Is(err, ErrNilSource) {
		t.Errorf("Wait(nil *fakeAnimator) = %v, want ErrNilSource", err)
	}
}

func TestWaitDisabledReturnsImmediately(t *testing.T) {
	a := &fakeAnimator{enabled: false}
	if err := Wait(context.Background(), a); err != nil {
		t.Errorf("Wait on disabled source = %v, want nil", err)
	}
	if a.polls() != 0 {
		t.Errorf("disabled source polled %d times", a.polls())
	}
}

func TestWaitAlreadyComplete(t *testing.T) {
	a := &fakeAnimator{enabled: true, time: 1.2}
	if err := Wait(context.Background(), a, WithPollInterval(time.Hour)); err != nil {
		t.Fatalf("Wait = %v", err)
	}
	if a.polls() != 1 {
		t.Errorf("polled %d times, want 1", a.polls())
	}
}

func TestWaitUntilProgress(t *testing.T) {
	a := &fakeAnimator{enabled: true, state: NameHash("Open"), step: 0.25}
	err := Wait(context.Background(), a,
		WithStateName("Open"),
		WithProgress(0.5),
		WithLayer(2),
		WithPollInterval(time.Millisecond),
	)
	if err != nil {
		t.Fatalf("Wait = %v", err)
	}
	// Times seen: 0, 0.25, 0.5.
	if a.polls() != 3 {
		t.Errorf("polled %d times, want 3", a.polls())
	}
	for _, l := range a.layers {
		if l != 2 {
			t.Fatalf("polled layer %d, want 2", l)
		}
	}
}

func TestWaitWrongStateBlocksUntilCancel(t *testing.T) {
	a := &fakeAnimator{enabled: true, state: NameHash("Idle"), time: 5}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := Wait(ctx, a, WithStateName("Close"), WithPollInterval(time.Millisecond))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait = %v, want deadline exceeded", err)
	}
	if a.polls() < 2 {
		t.Errorf("polled %d times, want repeated polling", a.polls())
	}
}

func TestWaitCanceled(t *testing.T) {
	a := &fakeAnimator{enabled: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Wait(ctx, a, WithPollInterval(time.Millisecond)); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait = %v, want context.Canceled", err)
	}
}

func TestWithPollIntervalIgnoresNonPositive(t *testing.T) {
	o := defaultOptions()
	WithPollInterval(0)(&o)
	WithPollInterval(-time.Second)(&o)
	if o.interval != DefaultPollInterval {
		t.Errorf("interval = %v, want default", o.interval)
	}
}
