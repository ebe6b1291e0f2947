package ecs

import (
	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimationEventType is the Donburi event type for animation completion and
// abort events. Subscribe to it in your ECS systems to react when a named
// animation finishes.
var AnimationEventType = events.NewEventType[motion.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to AnimationEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) motion.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event motion.Event) {
	AnimationEventType.Publish(s.world, event)
}

// Play plays anim and publishes its completion or abort into world under
// name.
func Play(world donburi.World, anim motion.Animation, name string) {
	motion.PlayWithEvents(anim, name, NewDonburiSink(world), nil, nil)
}
