// Package ecs publishes motion animation events into an ECS world.
//
// [NewDonburiSink] implements [motion.EventSink] on a [Donburi] world: every
// completed or aborted run of an animation played with [motion.PlayWithEvents]
// (or the [Play] shortcut) becomes an [AnimationEventType] event. Subscribe to
// it in your ECS systems and drain the queue with events.ProcessAllEvents.
//
// Usage:
//
//	ecs.Play(world, motion.FadeTo(drv, box, 0, 0.5, nil), "fade-out")
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
