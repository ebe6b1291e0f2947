package motion

// Animation is the capability surface shared by every animation: leaves,
// composites and the lazy delegate. Composites hold their children through
// this interface, so trees nest arbitrarily without knowing concrete types.
//
// Lifecycle: idle -> playing -> completed or aborted. Pausing is a flag on
// the playing state, not a state of its own. Calling Play again from any state
// restarts the animation cleanly.
type Animation interface {
	// Play starts the animation. onComplete fires at most once per Play and
	// never after Abort; onAbort fires when the animation is aborted. Either
	// may be nil. Both are invoked synchronously, usually from inside
	// Driver.Tick.
	Play(onComplete, onAbort func())

	// Abort stops the animation immediately and fires onAbort.
	Abort()

	// Pause and Resume toggle the pause flag. Only time-driven animations
	// observe it directly; composites forward it to their children.
	Pause()
	Resume()

	// FastForward jumps synchronously to the final observable state and stops
	// driver registration. It does not fire onComplete.
	FastForward()

	IsPlaying() bool
	IsPaused() bool

	// IsValid reports whether the animation still has something meaningful to
	// animate.
	IsValid() bool
}

// TimeScaler is implemented by animations whose duration can be rescaled.
type TimeScaler interface {
	ScaleTime(duration float64)
	ChangeSpeed(multiplier float64)
}

// Reverser is implemented by animations that can flip their direction.
type Reverser interface {
	Reverse()
}

// state is the play/pause/loop state and single-use callbacks embedded by
// every Animation implementation.
type state struct {
	playing bool
	paused  bool
	looping bool

	onComplete func()
	onAbort    func()

	// gen increments on every Play, Abort and FastForward so that callbacks
	// handed to children by an earlier run can recognize themselves as stale.
	gen uint64
}

// IsPlaying reports whether the animation is running (paused or not).
func (s *state) IsPlaying() bool { return s.playing }

// IsPaused reports whether the pause flag is set.
func (s *state) IsPaused() bool { return s.paused }

// IsLooping reports whether the animation restarts instead of finishing.
func (s *state) IsLooping() bool { return s.looping }

// SetLooping makes the animation restart from the beginning each time it
// would otherwise complete. onComplete never fires while looping.
func (s *state) SetLooping(looping bool) { s.looping = looping }

// start records the callbacks for a new run and returns its generation.
func (s *state) start(onComplete, onAbort func()) uint64 {
	s.gen++
	s.playing = true
	s.paused = false
	s.onComplete = onComplete
	s.onAbort = onAbort
	return s.gen
}

// stop ends the current run without firing anything. Callbacks handed out by
// the run become stale.
func (s *state) stop() {
	s.gen++
	s.playing = false
	s.paused = false
	s.onComplete = nil
	s.onAbort = nil
}

// complete stops the run and fires onComplete, once.
func (s *state) complete() {
	cb := s.onComplete
	s.stop()
	if cb != nil {
		cb()
	}
}

// abort stops the run and fires onAbort. onComplete is discarded.
func (s *state) abort() {
	cb := s.onAbort
	s.stop()
	if cb != nil {
		cb()
	}
}
