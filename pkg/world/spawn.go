package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"grove/pkg/components"
	"grove/pkg/ecs"
	"grove/pkg/render"
)

// Draw depths: ground below objects, objects below actors.
const (
	DepthGround = 0.0
	DepthObject = 0.5
	DepthActor  = 1.0
)

const playerSpeed = 120.0 // pixels per second

// Sprites maps map content to loaded sprite handles.
type Sprites struct {
	Tiles  map[TileType]render.SpriteID
	Tree   render.SpriteID
	Tank   render.SpriteID
	Player []render.SpriteID // animation frames, at least one
}

// SpawnResult reports what Spawn created.
type SpawnResult struct {
	Player    ecs.Entity
	Tiles     int
	Trees     int
	Actors    int
	HasPlayer bool
}

// Spawn instantiates the map into the registry: one entity per ground tile,
// one per tree, one per actor spawn.
func Spawn(reg *ecs.Registry, m *Map, sprites Sprites, log *zap.Logger) (SpawnResult, error) {
	var res SpawnResult

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			pos := mgl64.Vec2{float64(x * TileSize), float64(y * TileSize)}

			tile := reg.CreateEntity()
			id, ok := sprites.Tiles[m.Tiles[y][x].Type]
			if !ok {
				return res, fmt.Errorf("world: no sprite for tile type %d", m.Tiles[y][x].Type)
			}
			if err := ecs.AddComponent(reg, tile, components.RigidBody{Position: pos}); err != nil {
				return res, err
			}
			if err := ecs.AddComponent(reg, tile, components.Sprite{
				ID:    id,
				Depth: DepthGround,
				Size:  mgl64.Vec2{TileSize, TileSize},
			}); err != nil {
				return res, err
			}
			res.Tiles++

			if m.Objects[y][x] != ObjectTree {
				continue
			}
			tree := reg.CreateEntity()
			if err := ecs.AddComponent(reg, tree, components.RigidBody{Position: pos}); err != nil {
				return res, err
			}
			if err := ecs.AddComponent(reg, tree, components.Sprite{
				ID:    sprites.Tree,
				Depth: DepthObject,
				Size:  mgl64.Vec2{TileSize, TileSize},
			}); err != nil {
				return res, err
			}
			if err := ecs.AddComponent(reg, tree, components.Collider{Size: mgl64.Vec2{TileSize, TileSize}}); err != nil {
				return res, err
			}
			res.Trees++
		}
	}

	for _, s := range m.Spawns {
		e := reg.CreateEntity()
		body := components.RigidBody{
			Position: mgl64.Vec2{s.X, s.Y},
			Velocity: mgl64.Vec2{s.VX, s.VY},
		}
		if err := ecs.AddComponent(reg, e, body); err != nil {
			return res, err
		}
		if err := ecs.AddComponent(reg, e, components.Collider{Size: mgl64.Vec2{TileSize, TileSize}}); err != nil {
			return res, err
		}

		switch s.Kind {
		case "player":
			if len(sprites.Player) == 0 {
				return res, fmt.Errorf("world: player spawn but no player sprites")
			}
			sprite := components.Sprite{
				ID:    sprites.Player[0],
				Depth: DepthActor,
				Size:  mgl64.Vec2{TileSize, TileSize},
			}
			if err := ecs.AddComponent(reg, e, sprite); err != nil {
				return res, err
			}
			anim := components.Animation{Frames: sprites.Player, FrameTime: 0.2}
			if err := ecs.AddComponent(reg, e, anim); err != nil {
				return res, err
			}
			if err := ecs.AddComponent(reg, e, components.PlayerControl{Speed: playerSpeed}); err != nil {
				return res, err
			}
			if err := ecs.AddComponent(reg, e, components.CameraFocus{}); err != nil {
				return res, err
			}
			res.Player = e
			res.HasPlayer = true
		case "tank":
			sprite := components.Sprite{
				ID:    sprites.Tank,
				Depth: DepthActor,
				Size:  mgl64.Vec2{TileSize, TileSize},
			}
			if err := ecs.AddComponent(reg, e, sprite); err != nil {
				return res, err
			}
		default:
			return res, fmt.Errorf("world: unknown spawn kind %q", s.Kind)
		}
		res.Actors++
	}

	log.Info("map spawned",
		zap.Int("tiles", res.Tiles),
		zap.Int("trees", res.Trees),
		zap.Int("actors", res.Actors),
		zap.Bool("player", res.HasPlayer))
	return res, nil
}
