package motion

import "github.com/lucasb-eyer/go-colorful"

// Vec2 is a 2D vector used for positions and scales.
type Vec2 struct {
	X, Y float64
}

// Lerp interpolates linearly between a and b. t is not clamped, so an
// overshooting easing value carries the result past either end.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec2 interpolates both components of a and b without clamping t.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// LerpColor blends a and b channel-wise in RGB space without clamping t.
// The result may leave the displayable gamut; call Clamped before output.
func LerpColor(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t)
}
