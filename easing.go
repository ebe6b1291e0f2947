package motion

import (
	"sort"

	"github.com/fogleman/ease"
	tweenease "github.com/tanema/gween/ease"
)

// EasingFunc maps linear progress t in [0, 1] to an eased value. The result
// may leave [0, 1] for overshooting curves (Back, Elastic); interpolation
// driven by it is never clamped. A nil EasingFunc behaves like Linear.
type EasingFunc func(t float64) float64

// Catalogue of common curves, backed by github.com/fogleman/ease.
var (
	Linear = EasingFunc(ease.Linear)

	InQuad    = EasingFunc(ease.InQuad)
	OutQuad   = EasingFunc(ease.OutQuad)
	InOutQuad = EasingFunc(ease.InOutQuad)

	InCubic    = EasingFunc(ease.InCubic)
	OutCubic   = EasingFunc(ease.OutCubic)
	InOutCubic = EasingFunc(ease.InOutCubic)

	InQuart    = EasingFunc(ease.InQuart)
	OutQuart   = EasingFunc(ease.OutQuart)
	InOutQuart = EasingFunc(ease.InOutQuart)

	InQuint    = EasingFunc(ease.InQuint)
	OutQuint   = EasingFunc(ease.OutQuint)
	InOutQuint = EasingFunc(ease.InOutQuint)

	InSine    = EasingFunc(ease.InSine)
	OutSine   = EasingFunc(ease.OutSine)
	InOutSine = EasingFunc(ease.InOutSine)

	InExpo    = EasingFunc(ease.InExpo)
	OutExpo   = EasingFunc(ease.OutExpo)
	InOutExpo = EasingFunc(ease.InOutExpo)

	InCirc    = EasingFunc(ease.InCirc)
	OutCirc   = EasingFunc(ease.OutCirc)
	InOutCirc = EasingFunc(ease.InOutCirc)

	InElastic    = EasingFunc(ease.InElastic)
	OutElastic   = EasingFunc(ease.OutElastic)
	InOutElastic = EasingFunc(ease.InOutElastic)

	InBack    = EasingFunc(ease.InBack)
	OutBack   = EasingFunc(ease.OutBack)
	InOutBack = EasingFunc(ease.InOutBack)

	InBounce    = EasingFunc(ease.InBounce)
	OutBounce   = EasingFunc(ease.OutBounce)
	InOutBounce = EasingFunc(ease.InOutBounce)
)

var easingsByName = map[string]EasingFunc{
	"linear":       Linear,
	"inQuad":       InQuad,
	"outQuad":      OutQuad,
	"inOutQuad":    InOutQuad,
	"inCubic":      InCubic,
	"outCubic":     OutCubic,
	"inOutCubic":   InOutCubic,
	"inQuart":      InQuart,
	"outQuart":     OutQuart,
	"inOutQuart":   InOutQuart,
	"inQuint":      InQuint,
	"outQuint":     OutQuint,
	"inOutQuint":   InOutQuint,
	"inSine":       InSine,
	"outSine":      OutSine,
	"inOutSine":    InOutSine,
	"inExpo":       InExpo,
	"outExpo":      OutExpo,
	"inOutExpo":    InOutExpo,
	"inCirc":       InCirc,
	"outCirc":      OutCirc,
	"inOutCirc":    InOutCirc,
	"inElastic":    InElastic,
	"outElastic":   OutElastic,
	"inOutElastic": InOutElastic,
	"inBack":       InBack,
	"outBack":      OutBack,
	"inOutBack":    InOutBack,
	"inBounce":     InBounce,
	"outBounce":    OutBounce,
	"inOutBounce":  InOutBounce,
}

// EasingByName looks up a catalogue curve by its lower-camel name, e.g.
// "inOutQuad" or "outBack".
func EasingByName(name string) (EasingFunc, bool) {
	fn, ok := easingsByName[name]
	return fn, ok
}

// EasingNames returns the catalogue names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easingsByName))
	for name := range easingsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromTweenFunc adapts a gween easing (begin/change/duration form) to an
// EasingFunc over the unit interval.
func FromTweenFunc(fn tweenease.TweenFunc) EasingFunc {
	if fn == nil {
		return nil
	}
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Reversed returns the mirror curve of fn: an ease-in becomes an ease-out.
func Reversed(fn EasingFunc) EasingFunc {
	return func(t float64) float64 {
		return 1 - fn.Eval(1-t)
	}
}

// Eval applies the curve to t. A nil receiver is linear.
func (fn EasingFunc) Eval(t float64) float64 {
	if fn == nil {
		return t
	}
	return fn(t)
}

// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
