// Package ecs provides ECS adapters for willowui's event stream.
//
// The primary adapter is [NewDonburiStore], which forwards willowui events
// (flux changes, drags, drops, docking) into a [Donburi] world as typed
// events. Subscribe to [UIEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	ui.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
