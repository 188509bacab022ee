// Package ecs provides ECS adapters for galaxy's scene events.
//
// [NewDonburiStore] bridges scene events (target reached, section changed,
// mode changed, item selected) into a [Donburi] world as typed events.
// Subscribe to [CameraEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
