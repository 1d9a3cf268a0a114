// Package world loads tile maps and instantiates them as entities. It is an
// external collaborator of the ECS core: everything it does goes through the
// Registry's public API.
package world

import "github.com/go-gl/mathgl/mgl64"

// TileSize is the edge length of one tile in pixels.
const TileSize = 32

type TileType int

const (
	TileGrass TileType = iota
	TileWater
	TileSand
)

// Object layer values. Zero is empty.
const (
	ObjectTree = 1
)

type Tile struct {
	Type TileType
}

type Map struct {
	Width  int
	Height int
	Tiles   [][]Tile // ground layer
	Objects [][]int  // object layer, 0 = empty
	Spawns  []SpawnPoint
}

// SpawnPoint places an actor on the map at load time.
type SpawnPoint struct {
	X, Y   float64 // world position in pixels
	VX, VY float64 // initial velocity, pixels/second
	Kind   string  // "player" or "tank"
}

func NewMap(width, height int) *Map {
	m := &Map{
		Width:   width,
		Height:  height,
		Tiles:   make([][]Tile, height),
		Objects: make([][]int, height),
	}
	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]Tile, width)
		m.Objects[y] = make([]int, width)
	}
	return m
}

// PixelBounds is the map size in pixels, used to clamp the camera.
func (m *Map) PixelBounds() mgl64.Vec2 {
	return mgl64.Vec2{float64(m.Width * TileSize), float64(m.Height * TileSize)}
}
