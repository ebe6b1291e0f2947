package motion

import (
	"bytes"
	"log/slog"
	"testing"
)

// newTestDriver returns a driver whose log output is captured in the returned
// buffer.
func newTestDriver(t *testing.T) (*Driver, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewDriver(logger), &buf
}

// funcUpdater is an Updater backed by a closure.
type funcUpdater struct {
	name  string
	calls int
	fn    func(dt float64)
}

func (u *funcUpdater) Update(dt float64) {
	u.calls++
	if u.fn != nil {
		u.fn(dt)
	}
}

// recorder is a Refresher that remembers every value it was given and counts
// Start calls.
type recorder struct {
	values []float64
	starts int
}

func (r *recorder) Refresh(value float64) { r.values = append(r.values, value) }
func (r *recorder) Start()                { r.starts++ }

func (r *recorder) last() float64 {
	if len(r.values) == 0 {
		return -1
	}
	return r.values[len(r.values)-1]
}

// fakeTarget is a Target that can be disposed on demand.
type fakeTarget struct{ disposed bool }

func (f *fakeTarget) IsDisposed() bool { return f.disposed }

// counter tracks how often completion and abort callbacks fire.
type counter struct {
	completed int
	aborted   int
}

func (c *counter) onComplete() { c.completed++ }
func (c *counter) onAbort()    { c.aborted++ }

// newLeaf builds a recording timed animation.
func newLeaf(d *Driver, duration float64) (*Timed, *recorder) {
	r := &recorder{}
	return NewTimed(d, nil, duration, nil, r), r
}

// newTargetLeaf builds a recording timed animation bound to a disposable
// target.
func newTargetLeaf(d *Driver, duration float64) (*Timed, *recorder, *fakeTarget) {
	r := &recorder{}
	tgt := &fakeTarget{}
	return NewTimed(d, tgt, duration, nil, r), r, tgt
}
