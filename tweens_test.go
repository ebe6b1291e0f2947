package motion

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tweenDelta = 1e-9

func TestMoveToReachesTarget(t *testing.T) {
	d, _ := newTestDriver(t)
	node := NewNode("pos", 8, 8)
	node.X = 10
	node.Y = 20

	tw := MoveTo(d, node, 100, 200, 1.0, Linear)
	tw.Play(nil, nil)

	d.Tick(0.5)
	d.Tick(0.5)

	require.False(t, tw.IsPlaying(), "tween finishes after its full duration")
	assert.InDelta(t, 100, node.X, tweenDelta)
	assert.InDelta(t, 200, node.Y, tweenDelta)
}

func TestScaleToReachesTarget(t *testing.T) {
	d, _ := newTestDriver(t)
	node := NewNode("scale", 8, 8)

	tw := ScaleTo(d, node, 2.0, 3.0, 0.5, Linear)
	tw.Play(nil, nil)

	d.Tick(0.25)
	d.Tick(0.25)

	require.False(t, tw.IsPlaying())
	assert.InDelta(t, 2.0, node.ScaleX, tweenDelta)
	assert.InDelta(t, 3.0, node.ScaleY, tweenDelta)
}

func TestTintToAllComponents(t *testing.T) {
	d, _ := newTestDriver(t)
	node := NewNode("color", 8, 8)
	node.Color = colorful.Color{R: 1, G: 0, B: 0}
	target := colorful.Color{R: 0, G: 1, B: 0.5}

	tw := TintTo(d, node, target, 1.0, Linear)
	tw.Play(nil, nil)

	d.Tick(0.5)
	want := colorful.Color{R: 0.5, G: 0.5, B: 0.25}
	assert.True(t, node.Color.AlmostEqualRgb(want), "halfway color = %v, want %v", node.Color, want)

	d.Tick(0.5)
	assert.True(t, node.Color.AlmostEqualRgb(target), "color = %v, want %v", node.Color, target)
}

func TestFadeToInterpolates(t *testing.T) {
	d, _ := newTestDriver(t)
	node := NewNode("alpha", 8, 8)
	node.Alpha = 1.0

	tw := FadeTo(d, node, 0.0, 1.0, Linear)
	tw.Play(nil, nil)

	d.Tick(0.5)
	assert.InDelta(t, 0.5, node.Alpha, tweenDelta)

	d.Tick(0.5)
	assert.Equal(t, 0.0, node.Alpha)
}

func TestRotateToReachesTarget(t *testing.T) {
	d, _ := newTestDriver(t)
	node := NewNode("rot", 8, 8)

	RotateTo(d, node, math.Pi, 1.0, Linear).Play(nil, nil)
	d.Tick(1)

	assert.InDelta(t, math.Pi, node.Rotation, tweenDelta)
}

func TestTweenCapturesStartValueAtPlay(t *testing.T) {
	d, _ := newTestDriver(t)
	node := NewNode("late", 8, 8)

	tw := MoveTo(d, node, 100, 0, 1.0, Linear)
	node.X = 50
	tw.Play(nil, nil)
	d.Tick(0.5)

	assert.InDelta(t, 75, node.X, tweenDelta, "from-value is read at Play")
}

func TestTweenDisposedNodeBeforePlay(t *testing.T) {
	d, _ := newTestDriver(t)
	node := NewNode("disposed", 8, 8)
	node.X = 10
	node.Y = 20

	tw := MoveTo(d, node, 100, 200, 1.0, Linear)
	node.Dispose()
	tw.Play(nil, nil)
	d.Tick(0.1)

	require.False(t, tw.IsPlaying(), "tween on a disposed node must not play")
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, Vec2{X: 10, Y: 20}, node.Position())
}

func TestTweenDisposedMidAnimation(t *testing.T) {
	d, _ := newTestDriver(t)
	node := NewNode("mid-dispose", 8, 8)

	tw := MoveTo(d, node, 100, 100, 1.0, Linear)
	aborted := false
	tw.Play(nil, func() { aborted = true })

	d.Tick(0.1)
	d.Tick(0.1)
	require.True(t, tw.IsPlaying())

	node.Dispose()
	saved := node.Position()

	d.Tick(0.1)
	assert.True(t, aborted, "disposal mid-flight aborts the tween")
	assert.Equal(t, saved, node.Position())
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	d, _ := newTestDriver(t)
	nodeL := NewNode("linear", 8, 8)
	nodeC := NewNode("cubic", 8, 8)

	MoveTo(d, nodeL, 100, 0, 1.0, Linear).Play(nil, nil)
	MoveTo(d, nodeC, 100, 0, 1.0, OutCubic).Play(nil, nil)

	d.Tick(0.5)

	// OutCubic is ahead of linear at the midpoint.
	assert.GreaterOrEqual(t, nodeC.X-nodeL.X, 1.0)
}

func TestDelayOnlyWaits(t *testing.T) {
	d, _ := newTestDriver(t)
	done := false
	delay := Delay(d, 0.5)
	delay.Play(func() { done = true }, nil)

	d.Tick(0.25)
	require.False(t, done, "delay finished early")
	d.Tick(0.25)
	assert.True(t, done)
}

func TestTweenFloatNilFieldPanics(t *testing.T) {
	d, _ := newTestDriver(t)
	assert.PanicsWithValue(t, "motion: TweenFloat with nil field", func() {
		TweenFloat(d, nil, nil, 1, 1, Linear)
	})
}

func TestTimedUpdateZeroAlloc(t *testing.T) {
	d, _ := newTestDriver(t)
	node := NewNode("alloc", 8, 8)
	tw := MoveTo(d, node, 100, 100, 1.0, Linear)
	tw.Play(nil, nil)

	// Warm up; the first call might differ.
	tw.Update(0.01)

	allocs := testing.AllocsPerRun(100, func() {
		tw.Update(0.001)
	})
	assert.Zero(t, allocs)
}
