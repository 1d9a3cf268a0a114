// Package render is the drawing boundary consumed by systems. Systems only
// see the API interface; the ebiten-backed Renderer lives behind it so game
// logic and tests never touch the GPU directly.
package render

import "github.com/go-gl/mathgl/mgl64"

// SpriteID is a handle to a loaded sprite.
type SpriteID int

// SpriteDef names a rectangular region of an image file.
type SpriteDef struct {
	Path string // image file, relative to the asset dir
	X, Y int    // top-left corner within the image
	W, H int    // region size in pixels; zero means the whole image
}

// Camera is a world-space viewport: Position is the top-left corner, the
// size is in pixels.
type Camera struct {
	Position mgl64.Vec2
	Width    float64
	Height   float64
}

// API is the renderer surface systems draw through. Draw calls may be
// deferred; depth decides final ordering, lower values drawn first.
type API interface {
	LoadSprite(def SpriteDef) (SpriteID, error)
	DrawImage(id SpriteID, depth float64, pos mgl64.Vec2)
	DrawImageScaled(id SpriteID, depth float64, pos, size mgl64.Vec2)
	DrawRectangle(pos, size mgl64.Vec2)
	SetCamera(cam Camera)
}
