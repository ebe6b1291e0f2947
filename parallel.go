package motion

// Parallel plays all of its valid children at once and completes when the
// last of them completes.
type Parallel struct {
	collection
}

// NewParallel creates a parallel group of the given children.
func NewParallel(children ...Animation) *Parallel {
	p := &Parallel{}
	p.Add(children...)
	return p
}

// Play prunes invalid children and starts every remaining one. With nothing
// left to play the group completes before Play returns.
func (p *Parallel) Play(onComplete, onAbort func()) {
	p.start(onComplete, onAbort)
	p.completed = 0
	p.pruneInvalid()
	p.launch()
}

func (p *Parallel) launch() {
	if len(p.children) == 0 {
		p.finish()
		return
	}

	gen := p.gen
	// Children may remove themselves from the list while starting.
	children := append([]Animation(nil), p.children...)
	for _, child := range children {
		if gen != p.gen {
			return
		}
		child := child
		child.Play(func() {
			if gen != p.gen {
				return
			}
			p.completed++
			p.check()
		}, func() {
			if gen != p.gen || !p.playing || child.IsValid() {
				return
			}
			if p.removeChild(child) {
				p.check()
			}
		})
	}
}

// check completes the group once every remaining child has completed.
func (p *Parallel) check() {
	if p.completed >= len(p.children) {
		p.finish()
	}
}

func (p *Parallel) finish() {
	if p.looping && !p.restarting && len(p.children) > 0 {
		p.restarting = true
		p.completed = 0
		p.gen++
		p.launch()
		p.restarting = false
		return
	}
	p.complete()
}
