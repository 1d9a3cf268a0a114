package world_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"grove/pkg/components"
	"grove/pkg/ecs"
	"grove/pkg/render"
	"grove/pkg/world"
)

const mapJSON = `{
	"width": 3,
	"height": 2,
	"layers": {
		"ground": [[0, 0, 1], [2, 0, 0]],
		"objects": [[0, 1, 0], [0, 0, 0]]
	},
	"spawns": [
		{"x": 32, "y": 32, "kind": "player"},
		{"x": 64, "y": 0, "vx": 30, "kind": "tank"}
	]
}`

func testSprites() world.Sprites {
	return world.Sprites{
		Tiles: map[world.TileType]render.SpriteID{
			world.TileGrass: 0,
			world.TileWater: 1,
			world.TileSand:  2,
		},
		Tree:   3,
		Tank:   4,
		Player: []render.SpriteID{5, 6},
	}
}

func TestParse(t *testing.T) {
	m, err := world.Parse([]byte(mapJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Width != 3 || m.Height != 2 {
		t.Fatalf("size = %dx%d", m.Width, m.Height)
	}
	if m.Tiles[0][2].Type != world.TileWater {
		t.Errorf("tile (2,0) = %d, want water", m.Tiles[0][2].Type)
	}
	if m.Tiles[1][0].Type != world.TileSand {
		t.Errorf("tile (0,1) = %d, want sand", m.Tiles[1][0].Type)
	}
	if m.Objects[0][1] != world.ObjectTree {
		t.Error("tree object missing")
	}
	if len(m.Spawns) != 2 || m.Spawns[1].VX != 30 {
		t.Errorf("spawns = %+v", m.Spawns)
	}
}

func TestParseRejectsBadDimensions(t *testing.T) {
	if _, err := world.Parse([]byte(`{"width": 2, "height": 2, "layers": {"ground": [[0, 0]]}}`)); err == nil {
		t.Error("short ground layer accepted")
	}
	if _, err := world.Parse([]byte(`{"width": 0, "height": 0}`)); err == nil {
		t.Error("zero-size map accepted")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.json")
	if err := os.WriteFile(path, []byte(mapJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := world.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := world.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestSpawnPopulatesRegistry(t *testing.T) {
	m, err := world.Parse([]byte(mapJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	reg := ecs.NewRegistry()
	res, err := world.Spawn(reg, m, testSprites(), zap.NewNop())
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}

	if res.Tiles != 6 || res.Trees != 1 || res.Actors != 2 {
		t.Errorf("spawned %d tiles, %d trees, %d actors", res.Tiles, res.Trees, res.Actors)
	}
	if !res.HasPlayer {
		t.Fatal("no player spawned")
	}
	if got := len(reg.Entities()); got != 9 {
		t.Errorf("registry holds %d entities, want 9", got)
	}

	ctl, err := ecs.GetComponent[components.PlayerControl](reg, res.Player)
	if err != nil || ctl == nil {
		t.Fatalf("player control: %v, %v", ctl, err)
	}
	anim, _ := ecs.GetComponent[components.Animation](reg, res.Player)
	if anim == nil || len(anim.Frames) != 2 {
		t.Errorf("player animation = %+v", anim)
	}
}

func TestSpawnRejectsUnknownKind(t *testing.T) {
	m := world.NewMap(1, 1)
	m.Spawns = []world.SpawnPoint{{Kind: "dragon"}}
	if _, err := world.Spawn(ecs.NewRegistry(), m, testSprites(), zap.NewNop()); err == nil {
		t.Error("unknown spawn kind accepted")
	}
}

func TestPixelBounds(t *testing.T) {
	m := world.NewMap(4, 3)
	b := m.PixelBounds()
	if b[0] != 4*world.TileSize || b[1] != 3*world.TileSize {
		t.Errorf("bounds = %v", b)
	}
}
