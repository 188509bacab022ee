package galaxy

// EventStore is the interface for optional ECS integration. When set on a
// Scene, camera and selection events are forwarded to it.
type EventStore interface {
	EmitEvent(event CameraEvent)
}

// CameraEvent carries scene events for the ECS bridge.
type CameraEvent struct {
	Type EventType
	// Y is the camera position when the event fired.
	Y float64
	// Section is set for EventSectionChanged.
	Section string
	// Mode is set for EventModeChanged.
	Mode ViewMode
	// ItemID is set for EventItemSelected; empty when the selection closed.
	ItemID string
}

// emit forwards an event to the store, if any.
func (s *Scene) emit(e CameraEvent) {
	if s.store != nil {
		s.store.EmitEvent(e)
	}
	s.debugf("event %s y=%.2f section=%q mode=%q item=%q", e.Type, e.Y, e.Section, e.Mode, e.ItemID)
}
