// Package systems contains the per-tick logic that runs over the ECS core:
// input, movement, animation, collision, camera and rendering. Each system
// owns an interest set maintained by the Registry and a Run method taking
// whatever input that system needs.
package systems

import (
	"grove/pkg/components"
	"grove/pkg/ecs"
)

// Movement integrates velocity into position.
type Movement struct {
	ecs.Interest
}

func NewMovement() *Movement {
	return &Movement{Interest: ecs.NewInterest(ecs.Tag[components.RigidBody]())}
}

func (s *Movement) Run(v *ecs.View, dt float64) {
	for _, e := range s.Entities() {
		body, err := ecs.GetComponent[components.RigidBody](v, e)
		if err != nil || body == nil {
			// Removed by an earlier system this tick; expected, skip.
			continue
		}
		body.Position = body.Position.Add(body.Velocity.Mul(dt))
	}
}
