package systems_test

import (
	"github.com/go-gl/mathgl/mgl64"

	"grove/pkg/render"
)

// fakeRenderer records draw calls for assertions.
type fakeRenderer struct {
	draws  []drawRecord
	rects  []drawRecord
	camera render.Camera
	camSet int
}

type drawRecord struct {
	id    render.SpriteID
	depth float64
	pos   mgl64.Vec2
	size  mgl64.Vec2
}

func (f *fakeRenderer) LoadSprite(render.SpriteDef) (render.SpriteID, error) {
	return 0, nil
}

func (f *fakeRenderer) DrawImage(id render.SpriteID, depth float64, pos mgl64.Vec2) {
	f.draws = append(f.draws, drawRecord{id: id, depth: depth, pos: pos})
}

func (f *fakeRenderer) DrawImageScaled(id render.SpriteID, depth float64, pos, size mgl64.Vec2) {
	f.draws = append(f.draws, drawRecord{id: id, depth: depth, pos: pos, size: size})
}

func (f *fakeRenderer) DrawRectangle(pos, size mgl64.Vec2) {
	f.rects = append(f.rects, drawRecord{pos: pos, size: size})
}

func (f *fakeRenderer) SetCamera(cam render.Camera) {
	f.camera = cam
	f.camSet++
}
