package motion

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("box", 32, 16)

	assert.NotZero(t, n.ID)
	assert.Equal(t, "box", n.Name)
	assert.Equal(t, 32.0, n.Width)
	assert.Equal(t, 16.0, n.Height)
	assert.Equal(t, Vec2{X: 1, Y: 1}, n.Scale())
	assert.Equal(t, 1.0, n.Alpha)
	assert.Equal(t, colorful.Color{R: 1, G: 1, B: 1}, n.Color)
	assert.True(t, n.Visible)
}

func TestUniqueIDs(t *testing.T) {
	a := NewNode("a", 1, 1)
	b := NewNode("b", 1, 1)
	assert.NotEqual(t, a.ID, b.ID)
}

// --- Tree ---

func TestAddChildBasic(t *testing.T) {
	parent := NewNode("parent", 1, 1)
	child := NewNode("child", 1, 1)
	parent.AddChild(child)

	assert.Same(t, parent, child.Parent)
	require.Equal(t, 1, parent.NumChildren())
	assert.Same(t, child, parent.Children()[0])
}

func TestAddChildReparent(t *testing.T) {
	a := NewNode("a", 1, 1)
	b := NewNode("b", 1, 1)
	child := NewNode("child", 1, 1)

	a.AddChild(child)
	b.AddChild(child)

	assert.Same(t, b, child.Parent)
	assert.Equal(t, 0, a.NumChildren())
	assert.Equal(t, 1, b.NumChildren())
}

func TestAddChildPanics(t *testing.T) {
	root := NewNode("root", 1, 1)
	mid := NewNode("mid", 1, 1)
	root.AddChild(mid)

	assert.Panics(t, func() { mid.AddChild(root) }, "cycle")
	assert.Panics(t, func() { root.AddChild(root) }, "self")
	assert.Panics(t, func() { root.AddChild(nil) }, "nil")

	gone := NewNode("gone", 1, 1)
	gone.Dispose()
	assert.Panics(t, func() { root.AddChild(gone) }, "disposed")
}

func TestRemoveChild(t *testing.T) {
	parent := NewNode("parent", 1, 1)
	child := NewNode("child", 1, 1)
	parent.AddChild(child)

	parent.RemoveChild(child)

	assert.Nil(t, child.Parent)
	assert.Equal(t, 0, parent.NumChildren())
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	a := NewNode("a", 1, 1)
	b := NewNode("b", 1, 1)
	child := NewNode("child", 1, 1)
	a.AddChild(child)

	assert.Panics(t, func() { b.RemoveChild(child) })
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewNode("parent", 1, 1)
	child := NewNode("child", 1, 1)
	parent.AddChild(child)

	child.RemoveFromParent()
	assert.Nil(t, child.Parent)
	assert.Equal(t, 0, parent.NumChildren())

	// No parent: no-op.
	assert.NotPanics(t, child.RemoveFromParent)
}

// --- World values ---

func TestWorldPositionAndAlpha(t *testing.T) {
	root := NewNode("root", 1, 1)
	root.X, root.Y = 10, 20
	root.Alpha = 0.5
	child := NewNode("child", 1, 1)
	child.X, child.Y = 1, 2
	child.Alpha = 0.5
	root.AddChild(child)

	assert.Equal(t, Vec2{X: 11, Y: 22}, child.WorldPosition())
	assert.Equal(t, 0.25, child.WorldAlpha())
}

// --- Disposal ---

func TestDispose(t *testing.T) {
	root := NewNode("root", 1, 1)
	mid := NewNode("mid", 1, 1)
	leaf := NewNode("leaf", 1, 1)
	root.AddChild(mid)
	mid.AddChild(leaf)
	mid.UserData = "payload"

	mid.Dispose()

	assert.True(t, mid.IsDisposed())
	assert.True(t, leaf.IsDisposed(), "descendants are disposed too")
	assert.False(t, root.IsDisposed())
	assert.Equal(t, 0, root.NumChildren())
	assert.Zero(t, mid.ID)
	assert.Nil(t, mid.UserData)
	assert.Nil(t, leaf.Parent)
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewNode("n", 1, 1)
	n.Dispose()
	n.Dispose()
	assert.True(t, n.IsDisposed())
}
