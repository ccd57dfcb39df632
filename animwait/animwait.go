// Package animwait blocks until an animation layer reaches a playback
// position.
//
// Playback state is opaque to this package: a StateSource reports the
// current state of a layer and Wait polls it. Hosts adapt their animation
// system to StateSource; the waiting logic does not depend on it.
package animwait

import (
	"context"
	"errors"
	"hash/crc32"
	"reflect"
	"time"

	"github.com/gogpu/uifx"
)

// AnyState matches whatever state is playing.
const AnyState int32 = -1

// DefaultPollInterval is how often Wait samples the state source unless
// WithPollInterval says otherwise. It is one frame at 60 Hz.
const DefaultPollInterval = 16 * time.Millisecond

// ErrNilSource is returned by Wait when the state source is nil, including
// a nil pointer wrapped in the interface.
var ErrNilSource = errors.New("animwait: nil state source")

// StateInfo is a snapshot of one animation layer.
type StateInfo struct {
	// ShortNameHash identifies the playing state; see NameHash.
	ShortNameHash int32

	// NormalizedTime is the playback position: the integer part counts
	// completed loops and the fraction is progress through the current one.
	NormalizedTime float32
}

// StateSource reports animation playback state.
type StateSource interface {
	// Enabled reports whether the animation is running at all.
	Enabled() bool

	// CurrentState returns the state of the given layer.
	CurrentState(layer int) StateInfo
}

// NameHash returns the state identifier for name: its CRC-32 (IEEE)
// checksum reinterpreted as a signed 32-bit integer.
func NameHash(name string) int32 {
	return int32(crc32.ChecksumIEEE([]byte(name))) //nolint:gosec // intentional reinterpretation
}

// Option configures Wait.
type Option func(*waitOptions)

type waitOptions struct {
	state    int32
	progress float32
	layer    int
	interval time.Duration
}

func defaultOptions() waitOptions {
	return waitOptions{
		state:    AnyState,
		progress: 1,
		interval: DefaultPollInterval,
	}
}

// WithState waits for the state with the given hash. The default is
// AnyState.
func WithState(hash int32) Option {
	return func(o *waitOptions) { o.state = hash }
}

// WithStateName waits for the named state. It is WithState(NameHash(name)).
func WithStateName(name string) Option {
	return WithState(NameHash(name))
}

// WithProgress sets the normalized time to wait for. The default, 1, is
// the end of the first playthrough.
func WithProgress(p float32) Option {
	return func(o *waitOptions) { o.progress = p }
}

// WithLayer selects the animation layer to watch. The default is 0.
func WithLayer(layer int) Option {
	return func(o *waitOptions) { o.layer = layer }
}

// WithPollInterval sets how often the source is sampled. Non-positive
// values keep the default.
func WithPollInterval(d time.Duration) Option {
	return func(o *waitOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// Wait blocks until the watched layer plays the requested state at or past
// the requested progress.
//
// A disabled source returns nil at once: nothing is playing, so there is
// nothing to wait for. Wait returns ctx.Err() if ctx ends first.
func Wait(ctx context.Context, src StateSource, opts ...Option) error {
	if isNil(src) {
		return ErrNilSource
	}
	if !src.Enabled() {
		return nil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.done(src.CurrentState(o.layer)) {
		return nil
	}

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	started := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if o.done(src.CurrentState(o.layer)) {
				uifx.Logger().Debug("animwait: state reached",
					"layer", o.layer, "state", o.state, "progress", o.progress,
					"waited", time.Since(started))
				return nil
			}
		}
	}
}

func isNil(src StateSource) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func (o *waitOptions) done(s StateInfo) bool {
	return (o.state == AnyState || s.ShortNameHash == o.state) && s.NormalizedTime >= o.progress
}
