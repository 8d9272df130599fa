// Package ecs provides ECS adapters for emojislider.
package ecs

import (
	"github.com/phanxgames/emojislider"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SliderEventType is the Donburi event type for slider events.
// Subscribe to this in your ECS systems to receive tracking, commit and
// reset events.
var SliderEventType = events.NewEventType[emojislider.SliderEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Slider events are published to SliderEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) emojislider.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event emojislider.SliderEvent) {
	SliderEventType.Publish(s.world, event)
}
