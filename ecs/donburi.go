package ecs

import (
	"github.com/phanxgames/willowui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// UIEventType is the Donburi event type for willowui events.
var UIEventType = events.NewEventType[willowui.Event]()

type donburiStore struct {
	world donburi.World
	types map[willowui.EventType]bool
}

// NewDonburiStore creates an EventSink backed by a Donburi world. Events are
// published to UIEventType and can be consumed with Subscribe and
// ProcessEvents. When types is not empty only those event types are
// forwarded.
func NewDonburiStore(world donburi.World, types ...willowui.EventType) willowui.EventSink {
	s := &donburiStore{world: world}
	if len(types) > 0 {
		s.types = make(map[willowui.EventType]bool, len(types))
		for _, t := range types {
			s.types[t] = true
		}
	}
	return s
}

func (s *donburiStore) EmitEvent(event willowui.Event) {
	if s.types != nil && !s.types[event.Type] {
		return
	}
	UIEventType.Publish(s.world, event)
}
