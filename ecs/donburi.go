package ecs

import (
	"github.com/phanxgames/galaxy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CameraEventType is the Donburi event type for galaxy scene events.
// Subscribe to this in your ECS systems to receive navigation, section,
// mode and selection events.
var CameraEventType = events.NewEventType[galaxy.CameraEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events
// are published to CameraEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) galaxy.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event galaxy.CameraEvent) {
	CameraEventType.Publish(s.world, event)
}
