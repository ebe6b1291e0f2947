package motion

// Sequence plays its children one after another. Only the child at index
// CompletedCount plays; a child that turns out to be invalid when its turn
// comes is removed from the list and the next one starts in the same pass.
type Sequence struct {
	collection
}

// NewSequence creates a sequence of the given children.
func NewSequence(children ...Animation) *Sequence {
	s := &Sequence{}
	s.Add(children...)
	return s
}

// Play restarts the sequence from its first child. A child still running
// from the previous run is aborted first; its callbacks belong to that run
// and no longer reach the sequence.
func (s *Sequence) Play(onComplete, onAbort func()) {
	wasPlaying, current := s.playing, s.completed
	s.start(onComplete, onAbort)
	if wasPlaying && current < len(s.children) {
		if child := s.children[current]; child.IsPlaying() {
			child.Abort()
		}
	}
	s.completed = 0
	s.advance()
}

// Reverse mirrors CompletedCount around the child list
// (CompletedCount' = Len-1-CompletedCount). Individual children are not
// reversed and the traversal order is unchanged, so this does not by itself
// play the sequence backwards.
func (s *Sequence) Reverse() {
	if len(s.children) == 0 {
		return
	}
	s.completed = len(s.children) - 1 - s.completed
	if s.completed < 0 {
		s.completed = 0
	}
}

// advance starts the child at index CompletedCount, skipping invalid
// children, or completes the sequence once every child has finished.
func (s *Sequence) advance() {
	for s.playing {
		if s.completed >= len(s.children) {
			s.finish()
			return
		}

		child := s.children[s.completed]
		if !child.IsValid() {
			// The list shrinks, so the same index now names the next child.
			s.removeAt(s.completed)
			continue
		}

		gen := s.gen
		child.Play(func() {
			if gen != s.gen {
				return
			}
			s.completed++
			s.advance()
		}, func() {
			if gen != s.gen || !s.playing || child.IsValid() {
				return
			}
			s.removeChild(child)
			s.advance()
		})
		return
	}
}

func (s *Sequence) finish() {
	if s.looping && !s.restarting && len(s.children) > 0 {
		s.restarting = true
		s.completed = 0
		s.gen++
		s.advance()
		s.restarting = false
		return
	}
	s.complete()
}
