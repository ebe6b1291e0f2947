// Package motion is a frame-driven tweening engine for real-time
// interactive applications.
//
// Calling code asks for interpolations over time ("move A to B over one
// second with OutBack easing"), composes them into sequences and parallel
// groups, and lets a single [Driver] advance all of them once per frame. No
// timers, goroutines or coroutines are involved: the host calls
// [Driver.Tick] from its frame hook and every completion is reported
// synchronously through callbacks.
//
// # Quick start
//
// Create one driver for the application and tick it every frame:
//
//	drv := motion.NewDriver(nil)
//
//	box := motion.NewNode("box", 32, 32)
//	seq := motion.NewSequence(
//		motion.NewParallel(
//			motion.FadeTo(drv, box, 1, 1, motion.OutQuad),
//			motion.MoveTo(drv, box, 200, 120, 1, motion.InOutCubic),
//		),
//		motion.Delay(drv, 0.5),
//		motion.FadeTo(drv, box, 0, 0.5, motion.Linear),
//	)
//	seq.Play(func() { log.Println("done") }, nil)
//
//	// in the frame loop:
//	drv.Tick(dt)
//
// The host package runs a driver inside an Ebitengine game loop.
//
// # Animations
//
// Every animation implements [Animation]: Play, Abort, Pause, Resume,
// FastForward and validity. Leaves embed [Timed], which owns duration,
// current time and direction and calls a [Refresher] with the eased value
// each frame. [Custom] forwards that value to a function. [Sequence] plays
// children one after another, [Parallel] plays them together, and
// [Delegate] builds its animation lazily at play time.
//
// # Targets
//
// A leaf built with a [Target] stops as soon as the target is disposed: Play
// is a logged no-op and a running leaf aborts itself on its next update.
// Composites react only to the resulting abort, so a vanished target never
// crashes the driver or a composite tree.
//
// # Easing
//
// [EasingFunc] curves come from [fogleman/ease]; gween curves plug in through
// [FromTweenFunc]. Interpolation driven by an eased value is never clamped,
// so overshooting curves overshoot.
//
// [fogleman/ease]: https://github.com/fogleman/ease
package motion
