package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"grove/pkg/components"
	"grove/pkg/ecs"
	"grove/pkg/render"
)

// CameraFocus centers the viewport on the focused entity and clamps it to
// the map bounds. With multiple focused entities the lowest id wins.
type CameraFocus struct {
	ecs.Interest
	viewport mgl64.Vec2
	bounds   mgl64.Vec2
}

func NewCameraFocus(viewport, bounds mgl64.Vec2) *CameraFocus {
	return &CameraFocus{
		Interest: ecs.NewInterest(ecs.Tag[components.RigidBody](), ecs.Tag[components.CameraFocus]()),
		viewport: viewport,
		bounds:   bounds,
	}
}

func (s *CameraFocus) Run(v *ecs.View, r render.API) {
	for _, e := range s.Entities() {
		body, err := ecs.GetComponent[components.RigidBody](v, e)
		if err != nil || body == nil {
			continue
		}
		topLeft := body.Position.Sub(s.viewport.Mul(0.5))
		r.SetCamera(render.Camera{
			Position: clampToBounds(topLeft, s.viewport, s.bounds),
			Width:    s.viewport[0],
			Height:   s.viewport[1],
		})
		return
	}
}

func clampToBounds(topLeft, viewport, bounds mgl64.Vec2) mgl64.Vec2 {
	for axis := 0; axis < 2; axis++ {
		max := bounds[axis] - viewport[axis]
		if max < 0 {
			max = 0
		}
		if topLeft[axis] > max {
			topLeft[axis] = max
		}
		if topLeft[axis] < 0 {
			topLeft[axis] = 0
		}
	}
	return topLeft
}
