// Package ecs provides ECS adapters for emojislider's event stream.
//
// The primary adapter is [NewDonburiStore], which bridges slider events
// (begin/end tracking, progress, commit, reset) into a [Donburi] world as
// typed events. Subscribe to [SliderEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	slider.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
