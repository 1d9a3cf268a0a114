package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"grove/pkg/components"
	"grove/pkg/ecs"
)

// Contact reports two overlapping entities.
type Contact struct {
	A, B ecs.Entity
}

// Collision runs pairwise axis-aligned rectangle overlap tests over its
// interest set and dispatches a Contact for every overlapping pair. Pair
// order follows the snapshot's id order, so event order is deterministic.
type Collision struct {
	ecs.Interest
}

func NewCollision() *Collision {
	return &Collision{Interest: ecs.NewInterest(ecs.Tag[components.RigidBody](), ecs.Tag[components.Collider]())}
}

func (s *Collision) Run(v *ecs.View, bus *ecs.EventBus) {
	ents := s.Entities()
	for i := 0; i < len(ents); i++ {
		a := ents[i]
		for j := i + 1; j < len(ents); j++ {
			// A handler for an earlier contact may have removed either
			// party; rects are re-fetched and dead entities skipped.
			if v.IsDead(a) {
				break
			}
			b := ents[j]
			if v.IsDead(b) {
				continue
			}
			aPos, aSize, ok := colliderRect(v, a)
			if !ok {
				break
			}
			bPos, bSize, ok := colliderRect(v, b)
			if !ok {
				continue
			}
			if overlaps(aPos, aSize, bPos, bSize) {
				ecs.Dispatch(bus, v, Contact{A: a, B: b})
			}
		}
	}
}

func colliderRect(v *ecs.View, e ecs.Entity) (pos, size mgl64.Vec2, ok bool) {
	body, err := ecs.GetComponent[components.RigidBody](v, e)
	if err != nil || body == nil {
		return pos, size, false
	}
	col, err := ecs.GetComponent[components.Collider](v, e)
	if err != nil || col == nil {
		return pos, size, false
	}
	return body.Position, col.Size, true
}

// overlaps tests closed-interval range overlap on each axis: rectangles that
// merely touch count as colliding.
func overlaps(aPos, aSize, bPos, bSize mgl64.Vec2) bool {
	return aPos[0] <= bPos[0]+bSize[0] && bPos[0] <= aPos[0]+aSize[0] &&
		aPos[1] <= bPos[1]+bSize[1] && bPos[1] <= aPos[1]+aSize[1]
}

// RemoveColliding is the default Contact handler: both parties are removed.
// Either may already be dead from an earlier contact this tick, which is an
// expected race, not an error.
type RemoveColliding struct{}

func (RemoveColliding) Handle(v *ecs.View, c Contact) {
	_ = v.RemoveEntity(c.A)
	_ = v.RemoveEntity(c.B)
}
