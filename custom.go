package motion

// Custom is a timed animation that hands each eased value to a callback.
type Custom struct {
	*Timed
	fn func(value float64)
}

// NewCustom creates a Custom animation calling fn with the eased value on
// every refresh.
func NewCustom(d *Driver, duration float64, easing EasingFunc, fn func(value float64)) *Custom {
	c := &Custom{fn: fn}
	c.Timed = NewTimed(d, nil, duration, easing, c)
	return c
}

// Refresh forwards value to the callback.
func (c *Custom) Refresh(value float64) {
	if c.fn != nil {
		c.fn(value)
	}
}
