package motion

import "github.com/lucasb-eyer/go-colorful"

// nodeIDCounter is a plain counter; nodes are created on the frame goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a minimal animatable object: a named rectangle with transform,
// opacity and tint, arranged in a tree. It implements Target, so every
// built-in leaf stops touching a node once it is disposed.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	// Size of the rectangle in local units (used by renderers).
	Width, Height float64

	// Appearance
	Alpha   float64
	Color   colorful.Color
	Visible bool

	// Metadata
	UserData any

	disposed bool
}

// NewNode creates a visible, opaque, white node of the given size.
func NewNode(name string, width, height float64) *Node {
	return &Node{
		ID:      nextNodeID(),
		Name:    name,
		ScaleX:  1,
		ScaleY:  1,
		Width:   width,
		Height:  height,
		Alpha:   1,
		Color:   colorful.Color{R: 1, G: 1, B: 1},
		Visible: true,
	}
}

// Position returns the local position.
func (n *Node) Position() Vec2 { return Vec2{X: n.X, Y: n.Y} }

// SetPosition sets the local position.
func (n *Node) SetPosition(p Vec2) { n.X, n.Y = p.X, p.Y }

// Scale returns the local scale.
func (n *Node) Scale() Vec2 { return Vec2{X: n.ScaleX, Y: n.ScaleY} }

// SetScale sets the local scale.
func (n *Node) SetScale(s Vec2) { n.ScaleX, n.ScaleY = s.X, s.Y }

// WorldPosition returns the position accumulated through all ancestors.
// Parent scale and rotation are not applied.
func (n *Node) WorldPosition() Vec2 {
	p := Vec2{}
	for c := n; c != nil; c = c.Parent {
		p.X += c.X
		p.Y += c.Y
	}
	return p
}

// WorldAlpha returns the product of this node's alpha and its ancestors'.
func (n *Node) WorldAlpha() float64 {
	a := 1.0
	for c := n; c != nil; c = c.Parent {
		a *= c.Alpha
	}
	return a
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, disposed, or an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("motion: cannot add nil child")
	}
	if child.disposed || n.disposed {
		panic("motion: AddChild on disposed node")
	}
	if isAncestor(child, n) {
		panic("motion: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("motion: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Animations targeting any of them
// become invalid.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
