package motion

import "github.com/lucasb-eyer/go-colorful"

// FloatTween animates a single float64 field from the value it holds at Play
// time to a fixed destination.
type FloatTween struct {
	*Timed
	field    *float64
	from, to float64
}

// TweenFloat creates a FloatTween writing to field. target may be nil when
// the field does not belong to anything that can be disposed.
func TweenFloat(d *Driver, target Target, field *float64, to, duration float64, easing EasingFunc) *FloatTween {
	if field == nil {
		panic("motion: TweenFloat with nil field")
	}
	tw := &FloatTween{field: field, to: to}
	tw.Timed = NewTimed(d, target, duration, easing, tw)
	return tw
}

// Start captures the from-value.
func (tw *FloatTween) Start() { tw.from = *tw.field }

// Refresh writes the interpolated value.
func (tw *FloatTween) Refresh(value float64) { *tw.field = Lerp(tw.from, tw.to, value) }

// Vec2Tween animates a pair of node fields (position or scale).
type Vec2Tween struct {
	*Timed
	get      func() Vec2
	set      func(Vec2)
	from, to Vec2
}

// Start captures the from-value.
func (tw *Vec2Tween) Start() { tw.from = tw.get() }

// Refresh writes the interpolated value.
func (tw *Vec2Tween) Refresh(value float64) { tw.set(LerpVec2(tw.from, tw.to, value)) }

// MoveTo animates node's position to (x, y).
func MoveTo(d *Driver, node *Node, x, y, duration float64, easing EasingFunc) *Vec2Tween {
	tw := &Vec2Tween{get: node.Position, set: node.SetPosition, to: Vec2{X: x, Y: y}}
	tw.Timed = NewTimed(d, node, duration, easing, tw)
	return tw
}

// ScaleTo animates node's scale to (sx, sy).
func ScaleTo(d *Driver, node *Node, sx, sy, duration float64, easing EasingFunc) *Vec2Tween {
	tw := &Vec2Tween{get: node.Scale, set: node.SetScale, to: Vec2{X: sx, Y: sy}}
	tw.Timed = NewTimed(d, node, duration, easing, tw)
	return tw
}

// RotateTo animates node's rotation (radians) to angle.
func RotateTo(d *Driver, node *Node, angle, duration float64, easing EasingFunc) *FloatTween {
	return TweenFloat(d, node, &node.Rotation, angle, duration, easing)
}

// FadeTo animates node's alpha to alpha.
func FadeTo(d *Driver, node *Node, alpha, duration float64, easing EasingFunc) *FloatTween {
	return TweenFloat(d, node, &node.Alpha, alpha, duration, easing)
}

// ColorTween animates a node's tint in RGB space.
type ColorTween struct {
	*Timed
	node     *Node
	from, to colorful.Color
}

// TintTo animates node's color to c.
func TintTo(d *Driver, node *Node, c colorful.Color, duration float64, easing EasingFunc) *ColorTween {
	tw := &ColorTween{node: node, to: c}
	tw.Timed = NewTimed(d, node, duration, easing, tw)
	return tw
}

// Start captures the from-color.
func (tw *ColorTween) Start() { tw.from = tw.node.Color }

// Refresh writes the blended color.
func (tw *ColorTween) Refresh(value float64) { tw.node.Color = LerpColor(tw.from, tw.to, value) }

// Delay creates a timed animation that does nothing for duration seconds.
// Use it to space out the children of a Sequence.
func Delay(d *Driver, duration float64) *Timed {
	return NewTimed(d, nil, duration, nil, nil)
}
