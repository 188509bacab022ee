package ecs

import (
	"testing"

	"github.com/phanxgames/galaxy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []galaxy.CameraEvent
	CameraEventType.Subscribe(world, func(w donburi.World, e galaxy.CameraEvent) {
		received = append(received, e)
	})

	store.EmitEvent(galaxy.CameraEvent{
		Type:    galaxy.EventSectionChanged,
		Y:       -12,
		Section: "projects",
	})
	store.EmitEvent(galaxy.CameraEvent{
		Type:   galaxy.EventItemSelected,
		ItemID: "ordercubic",
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	CameraEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != galaxy.EventSectionChanged || e0.Section != "projects" || e0.Y != -12 {
		t.Errorf("event 0: %+v", e0)
	}
	e1 := received[1]
	if e1.Type != galaxy.EventItemSelected || e1.ItemID != "ordercubic" {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store galaxy.EventStore = NewDonburiStore(world)
	_ = store
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	CameraEventType.Subscribe(world, func(w donburi.World, e galaxy.CameraEvent) {
		count1++
	})
	CameraEventType.Subscribe(world, func(w donburi.World, e galaxy.CameraEvent) {
		count2++
	})

	store.EmitEvent(galaxy.CameraEvent{Type: galaxy.EventModeChanged, Mode: galaxy.ModeBoxes})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
