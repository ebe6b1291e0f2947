package motion

import (
	"errors"
	"fmt"
)

// Factory builds the Animation a Delegate wraps. It runs at play time, so it
// may read state that only exists then (current positions, live nodes). A
// factory whose target has vanished returns an error wrapping ErrTargetGone;
// any other error is an authoring bug.
type Factory func() (Animation, error)

// Delegate defers construction of an Animation until Play. Timing requests
// (ScaleTime, ChangeSpeed, Reverse) issued on the delegate are forwarded to
// the current instance and recorded, so every instance built by a later Play
// receives them too. Recorded requests accumulate: a Reverse issued during
// one run also reverses every instance built by a later Play.
type Delegate struct {
	state

	driver   *Driver
	factory  Factory
	anim     Animation
	requests []func(Animation)
}

// NewDelegate creates a delegate around factory.
func NewDelegate(d *Driver, factory Factory) *Delegate {
	if d == nil {
		panic("motion: NewDelegate with nil driver")
	}
	if factory == nil {
		panic("motion: NewDelegate with nil factory")
	}
	return &Delegate{driver: d, factory: factory}
}

// Animation returns the wrapped instance, or nil before the first Play.
func (d *Delegate) Animation() Animation {
	return d.anim
}

// IsValid is true until an instance exists; after that it mirrors the
// instance.
func (d *Delegate) IsValid() bool {
	if d.anim == nil {
		return true
	}
	return d.anim.IsValid()
}

// Play builds a fresh instance and plays it, routing its completion and
// abort through the delegate. If the factory reports ErrTargetGone, or builds
// an instance that is already invalid, the delegate counts as finished: it
// fast-forwards and completes. Any other factory error is logged and
// re-raised as a panic.
func (d *Delegate) Play(onComplete, onAbort func()) {
	gen := d.start(onComplete, onAbort)

	if prev := d.anim; prev != nil {
		d.anim = nil
		if prev.IsPlaying() {
			prev.Abort()
		}
	}

	anim := d.build()
	if anim == nil {
		d.finishEarly()
		return
	}
	d.anim = anim

	if !anim.IsValid() {
		d.driver.logger.Warn("delegate built an invalid animation; skipping",
			"animation", fmt.Sprintf("%T", anim))
		d.finishEarly()
		return
	}

	anim.Play(func() {
		if gen == d.gen {
			d.complete()
		}
	}, func() {
		if gen == d.gen {
			d.abort()
		}
	})
}

// build runs the factory and applies the recorded requests to the result. It
// returns nil when the target has vanished and panics on any other failure.
func (d *Delegate) build() Animation {
	anim, err := d.factory()
	if err != nil {
		if errors.Is(err, ErrTargetGone) {
			d.driver.logger.Warn("delegate target vanished; skipping", "err", err)
			return nil
		}
		d.driver.logger.Error("delegate factory failed", "err", err)
		d.stop()
		panic(fmt.Errorf("motion: delegate factory: %w", err))
	}
	if anim == nil {
		d.driver.logger.Error("delegate factory returned no animation")
		d.stop()
		panic("motion: delegate factory returned nil animation")
	}
	for _, req := range d.requests {
		req(anim)
	}
	return anim
}

// Abort aborts the instance (if any) and fires onAbort.
func (d *Delegate) Abort() {
	cb := d.onAbort
	d.stop()
	if d.anim != nil {
		d.anim.Abort()
	}
	if cb != nil {
		cb()
	}
}

// Pause pauses the instance.
func (d *Delegate) Pause() {
	if d.anim != nil {
		d.anim.Pause()
	}
	if d.playing {
		d.paused = true
	}
}

// Resume resumes the instance.
func (d *Delegate) Resume() {
	if d.anim != nil {
		d.anim.Resume()
	}
	d.paused = false
}

// FastForward drives the instance to its final state and stops. A delegate
// that has not built its instance yet builds one first, so skipping ahead
// through a tree still reaches the end state of every delegate in it.
func (d *Delegate) FastForward() {
	d.stop()
	if d.anim == nil {
		d.anim = d.build()
	}
	if d.anim != nil {
		d.anim.FastForward()
	}
}

// ScaleTime rescales the wrapped animation's duration.
func (d *Delegate) ScaleTime(duration float64) {
	d.request("ScaleTime", func(a Animation) bool {
		ts, ok := a.(TimeScaler)
		if ok {
			ts.ScaleTime(duration)
		}
		return ok
	})
}

// ChangeSpeed multiplies the wrapped animation's playback rate.
func (d *Delegate) ChangeSpeed(multiplier float64) {
	d.request("ChangeSpeed", func(a Animation) bool {
		ts, ok := a.(TimeScaler)
		if ok {
			ts.ChangeSpeed(multiplier)
		}
		return ok
	})
}

// Reverse flips the wrapped animation's direction.
func (d *Delegate) Reverse() {
	d.request("Reverse", func(a Animation) bool {
		r, ok := a.(Reverser)
		if ok {
			r.Reverse()
		}
		return ok
	})
}

// request records op for future instances and applies it to the current one.
func (d *Delegate) request(name string, op func(Animation) bool) {
	apply := func(a Animation) {
		if !op(a) {
			d.driver.logger.Warn("wrapped animation does not support request",
				"request", name, "animation", fmt.Sprintf("%T", a))
		}
	}
	d.requests = append(d.requests, apply)
	if d.anim != nil {
		apply(d.anim)
	}
}

// finishEarly treats the run as already done: fast-forward whatever was
// built, then complete.
func (d *Delegate) finishEarly() {
	cb := d.onComplete
	d.stop()
	if d.anim != nil {
		d.anim.FastForward()
	}
	if cb != nil {
		cb()
	}
}
