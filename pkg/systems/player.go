package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"grove/pkg/components"
	"grove/pkg/config"
	"grove/pkg/ecs"
	"grove/pkg/input"
)

// KeyPress is dispatched on the bus for every key that went down this tick.
type KeyPress struct {
	Key ebiten.Key
}

// InputArgs is the per-tick input to PlayerInput.
type InputArgs struct {
	Keys        input.Keys
	JustPressed []ebiten.Key
	Bus         *ecs.EventBus
}

// PlayerInput turns the pressed-key snapshot into velocity on
// keyboard-driven entities and publishes KeyPress events.
type PlayerInput struct {
	ecs.Interest
	keys config.Bindings
}

func NewPlayerInput(keys config.Bindings) *PlayerInput {
	return &PlayerInput{
		Interest: ecs.NewInterest(ecs.Tag[components.RigidBody](), ecs.Tag[components.PlayerControl]()),
		keys:     keys,
	}
}

func (s *PlayerInput) Run(v *ecs.View, args InputArgs) {
	dx, dy := 0.0, 0.0
	if args.Keys.Pressed(s.keys.Up) {
		dy = -1
	}
	if args.Keys.Pressed(s.keys.Down) {
		dy = 1
	}
	if args.Keys.Pressed(s.keys.Left) {
		dx = -1
	}
	if args.Keys.Pressed(s.keys.Right) {
		dx = 1
	}
	// Normalize diagonal movement
	if dx != 0 && dy != 0 {
		dx *= 0.7071
		dy *= 0.7071
	}

	for _, e := range s.Entities() {
		ctl, err := ecs.GetComponent[components.PlayerControl](v, e)
		if err != nil || ctl == nil {
			continue
		}
		body, err := ecs.GetComponent[components.RigidBody](v, e)
		if err != nil || body == nil {
			continue
		}
		body.Velocity[0] = dx * ctl.Speed
		body.Velocity[1] = dy * ctl.Speed
	}

	for _, k := range args.JustPressed {
		ecs.Dispatch(args.Bus, v, KeyPress{Key: k})
	}
}
