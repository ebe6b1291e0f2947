package motion

// EventKind says how an animation run ended.
type EventKind uint8

const (
	EventCompleted EventKind = iota // onComplete fired
	EventAborted                    // onAbort fired
)

// String returns "completed" or "aborted".
func (k EventKind) String() string {
	switch k {
	case EventCompleted:
		return "completed"
	case EventAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Event reports the end of a named animation run.
type Event struct {
	Name string
	Kind EventKind
}

// EventSink receives animation events. The ecs package provides a sink that
// forwards them into a Donburi world.
type EventSink interface {
	EmitEvent(event Event)
}

// PlayWithEvents plays anim and emits an Event named name to sink when the
// run completes or aborts. Further callbacks run after the event is emitted;
// either may be nil.
func PlayWithEvents(anim Animation, name string, sink EventSink, onComplete, onAbort func()) {
	anim.Play(func() {
		sink.EmitEvent(Event{Name: name, Kind: EventCompleted})
		if onComplete != nil {
			onComplete()
		}
	}, func() {
		sink.EmitEvent(Event{Name: name, Kind: EventAborted})
		if onAbort != nil {
			onAbort()
		}
	})
}
