// Package components holds the plain data types attached to entities.
package components

import (
	"github.com/go-gl/mathgl/mgl64"

	"grove/pkg/render"
)

// RigidBody holds world-space position and velocity in pixels and
// pixels/second.
type RigidBody struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2
}

// Sprite is what the render system draws for an entity. Size of zero means
// the sprite's natural pixel size.
type Sprite struct {
	ID    render.SpriteID
	Depth float64
	Size  mgl64.Vec2
}

// Animation cycles an entity's sprite through Frames. Elapsed accumulates
// delta time; every FrameTime seconds the index advances, wrapping modulo
// the frame count.
type Animation struct {
	Frames    []render.SpriteID
	Index     int
	FrameTime float64
	Elapsed   float64
}

// Collider is an axis-aligned collision rectangle anchored at the entity's
// position.
type Collider struct {
	Size mgl64.Vec2
}

// PlayerControl marks an entity as keyboard-driven.
type PlayerControl struct {
	Speed float64 // pixels per second
}

// CameraFocus marks the entity the camera follows.
type CameraFocus struct{}
