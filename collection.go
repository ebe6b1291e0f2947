package motion

// collection is the child list and bookkeeping shared by Sequence and
// Parallel.
type collection struct {
	state

	children  []Animation
	completed int

	// restarting is set while a looping collection relaunches its children.
	// A run that completes again before the relaunch returns finishes for
	// real instead of recursing forever.
	restarting bool
}

// Add appends children. Panics on a nil child.
func (c *collection) Add(children ...Animation) {
	for _, child := range children {
		if child == nil {
			panic("motion: cannot add nil animation")
		}
		c.children = append(c.children, child)
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (c *collection) Children() []Animation {
	return c.children
}

// Len returns the number of children.
func (c *collection) Len() int {
	return len(c.children)
}

// CompletedCount returns how many children have completed in the current run.
func (c *collection) CompletedCount() int {
	return c.completed
}

// IsValid reports whether there is at least one child.
func (c *collection) IsValid() bool {
	return len(c.children) > 0
}

// Abort stops the collection, aborts every child and fires onAbort. The run
// is ended before the children are touched, so their abort callbacks see a
// stopped parent and stay inert.
func (c *collection) Abort() {
	cb := c.onAbort
	c.stop()
	for _, child := range c.children {
		child.Abort()
	}
	if cb != nil {
		cb()
	}
}

// FastForward drives every child to its final state and stops. onComplete
// is not fired.
func (c *collection) FastForward() {
	c.stop()
	for _, child := range c.children {
		child.FastForward()
	}
}

// Pause pauses every child.
func (c *collection) Pause() {
	for _, child := range c.children {
		child.Pause()
	}
	if c.playing {
		c.paused = true
	}
}

// Resume resumes every child.
func (c *collection) Resume() {
	for _, child := range c.children {
		child.Resume()
	}
	c.paused = false
}

// removeChild drops child from the list, if present, and reports whether it
// was found.
func (c *collection) removeChild(child Animation) bool {
	for i, a := range c.children {
		if a == child {
			c.removeAt(i)
			return true
		}
	}
	return false
}

func (c *collection) removeAt(i int) {
	copy(c.children[i:], c.children[i+1:])
	c.children[len(c.children)-1] = nil
	c.children = c.children[:len(c.children)-1]
}

// pruneInvalid removes every child that reports itself invalid.
func (c *collection) pruneInvalid() {
	kept := c.children[:0]
	for _, child := range c.children {
		if child.IsValid() {
			kept = append(kept, child)
		}
	}
	for i := len(kept); i < len(c.children); i++ {
		c.children[i] = nil
	}
	c.children = kept
}
