package motion

import "fmt"

// Refresher is the hook a leaf animation implements to apply its value. It
// receives the eased value for the current progress; for overshooting curves
// that value may fall outside [0, 1].
type Refresher interface {
	Refresh(value float64)
}

// Starter is an optional hook on a Refresher, called at every Play before the
// first Refresh. Leaves use it to capture their from-values at play time.
type Starter interface {
	Start()
}

// Target is the object a leaf animates. While the target is disposed the
// animation is invalid: Play is a logged no-op and a running animation aborts
// itself on its next update.
type Target interface {
	IsDisposed() bool
}

// Timed is a leaf Animation advanced by a Driver. It owns duration, current
// time and direction; each update derives progress as CurrentTime/Duration
// clamped to [0, 1], applies the easing curve and hands the result to its
// Refresher.
//
// Concrete leaves embed *Timed and pass themselves as the Refresher.
type Timed struct {
	state

	driver    *Driver
	target    Target
	refresher Refresher
	easing    EasingFunc

	duration    float64
	currentTime float64
	reversed    bool
	primed      bool
}

// NewTimed creates a timed animation. target and r may be nil; a nil target
// is always valid and a nil Refresher makes a pure delay. Negative durations
// are treated as zero.
func NewTimed(d *Driver, target Target, duration float64, easing EasingFunc, r Refresher) *Timed {
	if d == nil {
		panic("motion: NewTimed with nil driver")
	}
	if duration < 0 {
		duration = 0
	}
	return &Timed{
		driver:    d,
		target:    target,
		refresher: r,
		easing:    easing,
		duration:  duration,
	}
}

// Duration returns the length of one pass in seconds.
func (t *Timed) Duration() float64 { return t.duration }

// CurrentTime returns the position within the pass, between 0 and Duration.
func (t *Timed) CurrentTime() float64 { return t.currentTime }

// IsReversed reports whether the animation runs from Duration towards 0.
func (t *Timed) IsReversed() bool { return t.reversed }

// Easing returns the easing curve; nil means linear.
func (t *Timed) Easing() EasingFunc { return t.easing }

// SetEasing replaces the easing curve.
func (t *Timed) SetEasing(fn EasingFunc) { t.easing = fn }

// Progress returns CurrentTime/Duration clamped to [0, 1]. A zero-length
// animation reports 1.
func (t *Timed) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return clamp01(t.currentTime / t.duration)
}

// IsValid reports whether the target (if any) is still alive.
func (t *Timed) IsValid() bool {
	return t.target == nil || !t.target.IsDisposed()
}

// Play starts the animation from the beginning of its range. An invalid
// animation logs a warning and does not start. A zero-length animation
// refreshes once at full progress and completes before Play returns, without
// touching the driver.
func (t *Timed) Play(onComplete, onAbort func()) {
	if !t.IsValid() {
		t.driver.logger.Warn("animation target is gone; not starting",
			"animation", fmt.Sprintf("%T", t.refresher))
		return
	}
	t.start(onComplete, onAbort)
	t.prime()

	if t.duration <= 0 {
		t.driver.Remove(t)
		t.currentTime = 0
		t.refresh(1)
		t.complete()
		return
	}

	if !t.driver.Contains(t) {
		_ = t.driver.Add(t)
	}
	t.rewind()
	t.refresh(t.Progress())
}

// Update advances the animation by dt seconds. It is invoked by the driver
// while the animation is playing and not paused.
func (t *Timed) Update(dt float64) {
	if !t.playing || t.paused {
		return
	}
	if !t.IsValid() {
		t.currentTime = t.duration
		t.Abort()
		return
	}

	if t.reversed {
		t.currentTime -= dt
	} else {
		t.currentTime += dt
	}
	progress := t.Progress()
	t.refresh(progress)

	if !t.finished(progress) {
		return
	}
	if t.looping {
		t.rewind()
		return
	}
	t.driver.Remove(t)
	t.complete()
}

// Abort stops the animation, deregisters it and fires onAbort.
func (t *Timed) Abort() {
	t.driver.Remove(t)
	t.abort()
}

// Pause freezes the animation and deregisters it until Resume.
func (t *Timed) Pause() {
	if !t.playing || t.paused {
		return
	}
	t.paused = true
	t.driver.Remove(t)
}

// Resume continues a paused animation from where it stopped.
func (t *Timed) Resume() {
	if !t.playing || !t.paused {
		return
	}
	t.paused = false
	if !t.driver.Contains(t) {
		_ = t.driver.Add(t)
	}
}

// FastForward jumps to the end of the range (the start, when reversed),
// refreshes with that terminal progress and deregisters. onComplete is not
// fired. A disposed target is not written to.
func (t *Timed) FastForward() {
	t.driver.Remove(t)
	if !t.primed && t.IsValid() {
		t.prime()
	}
	terminal := 1.0
	t.currentTime = t.duration
	if t.reversed {
		terminal = 0
		t.currentTime = 0
	}
	if t.IsValid() {
		t.refresh(terminal)
	}
	t.stop()
}

// ScaleTime changes the duration while preserving the elapsed fraction, so a
// speed change mid-flight does not make the animated value jump.
func (t *Timed) ScaleTime(duration float64) {
	if duration < 0 {
		duration = 0
	}
	if t.duration > 0 {
		t.currentTime = duration * t.currentTime / t.duration
	} else if t.reversed {
		t.currentTime = duration
	}
	t.duration = duration
}

// ChangeSpeed multiplies the playback rate: 2 plays twice as fast. Values
// that are not positive are ignored.
func (t *Timed) ChangeSpeed(multiplier float64) {
	if multiplier <= 0 {
		t.driver.logger.Warn("ignoring non-positive speed multiplier",
			"multiplier", multiplier)
		return
	}
	t.ScaleTime(t.duration / multiplier)
}

// Reverse flips the direction of travel. CurrentTime is left where it is.
func (t *Timed) Reverse() {
	t.reversed = !t.reversed
}

// rewind moves CurrentTime to the start of the range for the current
// direction.
func (t *Timed) rewind() {
	if t.reversed {
		t.currentTime = t.duration
	} else {
		t.currentTime = 0
	}
}

func (t *Timed) finished(progress float64) bool {
	if t.reversed {
		return progress <= 0
	}
	return progress >= 1
}

// prime runs the Starter hook. Play primes every run; FastForward primes only
// a leaf that never played, so its from-values exist before the jump.
func (t *Timed) prime() {
	t.primed = true
	if s, ok := t.refresher.(Starter); ok {
		s.Start()
	}
}

func (t *Timed) refresh(progress float64) {
	if t.refresher != nil {
		t.refresher.Refresh(t.easing.Eval(progress))
	}
}
