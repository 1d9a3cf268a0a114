package systems

import (
	"grove/pkg/components"
	"grove/pkg/ecs"
)

// Animation advances frame timers and swaps sprite indices on overflow,
// wrapping modulo the frame list length.
type Animation struct {
	ecs.Interest
}

func NewAnimation() *Animation {
	return &Animation{Interest: ecs.NewInterest(ecs.Tag[components.Sprite](), ecs.Tag[components.Animation]())}
}

func (s *Animation) Run(v *ecs.View, dt float64) {
	for _, e := range s.Entities() {
		anim, err := ecs.GetComponent[components.Animation](v, e)
		if err != nil || anim == nil {
			continue
		}
		sprite, err := ecs.GetComponent[components.Sprite](v, e)
		if err != nil || sprite == nil {
			continue
		}
		if len(anim.Frames) == 0 || anim.FrameTime <= 0 {
			continue
		}

		anim.Elapsed += dt
		for anim.Elapsed >= anim.FrameTime {
			anim.Elapsed -= anim.FrameTime
			anim.Index = (anim.Index + 1) % len(anim.Frames)
		}
		sprite.ID = anim.Frames[anim.Index]
	}
}
