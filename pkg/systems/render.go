package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"grove/pkg/components"
	"grove/pkg/ecs"
	"grove/pkg/render"
)

// Render submits every visible entity to the renderer. It is also a KeyPress
// handler through the same instance: the configured debug key toggles
// collider outlines.
type Render struct {
	ecs.Interest
	debugKey      ebiten.Key
	showColliders bool
}

func NewRender(debugKey ebiten.Key) *Render {
	return &Render{
		Interest: ecs.NewInterest(ecs.Tag[components.RigidBody](), ecs.Tag[components.Sprite]()),
		debugKey: debugKey,
	}
}

func (s *Render) Run(v *ecs.View, r render.API) {
	for _, e := range s.Entities() {
		body, err := ecs.GetComponent[components.RigidBody](v, e)
		if err != nil || body == nil {
			continue
		}
		sprite, err := ecs.GetComponent[components.Sprite](v, e)
		if err != nil || sprite == nil {
			continue
		}

		if sprite.Size[0] > 0 && sprite.Size[1] > 0 {
			r.DrawImageScaled(sprite.ID, sprite.Depth, body.Position, sprite.Size)
		} else {
			r.DrawImage(sprite.ID, sprite.Depth, body.Position)
		}

		if s.showColliders {
			col, err := ecs.GetComponent[components.Collider](v, e)
			if err == nil && col != nil {
				r.DrawRectangle(body.Position, col.Size)
			}
		}
	}
}

func (s *Render) Handle(v *ecs.View, k KeyPress) {
	if k.Key == s.debugKey {
		s.showColliders = !s.showColliders
	}
}
