package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelCompletesWithLongestChild(t *testing.T) {
	d, _ := newTestDriver(t)
	a, _ := newLeaf(d, 1)
	b, _ := newLeaf(d, 2)
	p := NewParallel(a, b)
	var cnt counter

	p.Play(cnt.onComplete, cnt.onAbort)
	assert.True(t, a.IsPlaying())
	assert.True(t, b.IsPlaying())

	d.Tick(1)
	assert.False(t, a.IsPlaying())
	assert.Equal(t, 1, p.CompletedCount())
	assert.Equal(t, 0, cnt.completed)

	d.Tick(1)
	assert.Equal(t, 1, cnt.completed)
	assert.False(t, p.IsPlaying())

	d.Tick(1)
	assert.Equal(t, 1, cnt.completed)
	assert.Equal(t, 0, cnt.aborted)
}

func TestParallelEmptyCompletesImmediately(t *testing.T) {
	p := NewParallel()
	var cnt counter
	p.Play(cnt.onComplete, nil)
	assert.Equal(t, 1, cnt.completed)
	assert.False(t, p.IsValid())
}

func TestParallelInstantChildren(t *testing.T) {
	d, _ := newTestDriver(t)
	p := NewParallel(Delay(d, 0), Delay(d, 0))
	var cnt counter
	p.Play(cnt.onComplete, nil)
	assert.Equal(t, 1, cnt.completed)
	assert.Equal(t, 2, p.CompletedCount())
}

func TestParallelPrunesInvalidChildrenAtPlay(t *testing.T) {
	d, _ := newTestDriver(t)
	a, ra, tgt := newTargetLeaf(d, 1)
	b, _ := newLeaf(d, 1)
	p := NewParallel(a, b)
	tgt.disposed = true
	var cnt counter

	p.Play(cnt.onComplete, nil)

	assert.Equal(t, 1, p.Len())
	assert.Empty(t, ra.values)
	assert.False(t, a.IsPlaying())

	d.Tick(1)
	assert.Equal(t, 1, cnt.completed)
}

func TestParallelAllChildrenInvalid(t *testing.T) {
	d, _ := newTestDriver(t)
	a, _, tgt := newTargetLeaf(d, 1)
	p := NewParallel(a)
	tgt.disposed = true
	var cnt counter

	p.Play(cnt.onComplete, nil)

	assert.Equal(t, 1, cnt.completed)
	assert.Equal(t, 0, d.Len())
}

func TestParallelChildDisposedAfterOthersCompleted(t *testing.T) {
	d, _ := newTestDriver(t)
	a, _, tgt := newTargetLeaf(d, 2)
	b, _ := newLeaf(d, 1)
	p := NewParallel(a, b)
	var cnt counter
	p.Play(cnt.onComplete, cnt.onAbort)

	d.Tick(1)
	assert.Equal(t, 0, cnt.completed)

	tgt.disposed = true
	d.Tick(0.5)

	assert.Equal(t, 1, cnt.completed)
	assert.Equal(t, 0, cnt.aborted)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 0, d.Len())
}

func TestParallelAbort(t *testing.T) {
	d, _ := newTestDriver(t)
	a, _ := newLeaf(d, 1)
	b, _ := newLeaf(d, 2)
	p := NewParallel(a, b)
	var cnt counter
	p.Play(cnt.onComplete, cnt.onAbort)
	d.Tick(0.5)

	p.Abort()

	assert.Equal(t, 1, cnt.aborted)
	assert.Equal(t, 0, d.Len())
	d.Tick(2)
	assert.Equal(t, 0, cnt.completed)
}

func TestParallelFastForward(t *testing.T) {
	d, _ := newTestDriver(t)
	a, ra := newLeaf(d, 1)
	b, rb := newLeaf(d, 2)
	p := NewParallel(a, b)
	var cnt counter
	p.Play(cnt.onComplete, cnt.onAbort)
	d.Tick(0.5)

	p.FastForward()

	assert.Equal(t, 1.0, ra.last())
	assert.Equal(t, 1.0, rb.last())
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, counter{}, cnt)
}

func TestParallelPauseResume(t *testing.T) {
	d, _ := newTestDriver(t)
	a, _ := newLeaf(d, 1)
	b, _ := newLeaf(d, 1)
	p := NewParallel(a, b)
	var cnt counter
	p.Play(cnt.onComplete, nil)

	p.Pause()
	assert.Equal(t, 0, d.Len())
	d.Tick(1)
	assert.Equal(t, 0, cnt.completed)

	p.Resume()
	assert.Equal(t, 2, d.Len())
	d.Tick(1)
	assert.Equal(t, 1, cnt.completed)
}

func TestParallelLooping(t *testing.T) {
	d, _ := newTestDriver(t)
	a, ra := newLeaf(d, 1)
	p := NewParallel(a)
	p.SetLooping(true)
	var cnt counter
	p.Play(cnt.onComplete, nil)

	d.Tick(1)
	d.Tick(0.5)

	assert.True(t, p.IsPlaying())
	assert.Equal(t, 0, cnt.completed)
	assert.Equal(t, 2, ra.starts)
	assert.InDelta(t, 0.5, ra.last(), 1e-9)
}

func TestParallelReplayIgnoresStaleCallbacks(t *testing.T) {
	d, _ := newTestDriver(t)
	a, _ := newLeaf(d, 1)
	b, _ := newLeaf(d, 2)
	p := NewParallel(a, b)
	var first, second counter
	p.Play(first.onComplete, first.onAbort)
	d.Tick(1)

	p.Play(second.onComplete, second.onAbort)
	d.Tick(1)
	assert.Equal(t, 0, second.completed)
	d.Tick(1)

	assert.Equal(t, counter{}, first)
	assert.Equal(t, 1, second.completed)
}
