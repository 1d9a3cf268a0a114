// Package game wires the ECS core, the systems and the renderer into an
// ebiten game loop.
package game

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"grove/pkg/config"
	"grove/pkg/ecs"
	"grove/pkg/input"
	"grove/pkg/render"
	"grove/pkg/stats"
	"grove/pkg/systems"
	"grove/pkg/world"
)

// maxDelta caps the simulated time step so a stalled frame (window drag,
// debugger) doesn't teleport entities.
const maxDelta = 0.25

type Game struct {
	cfg      config.Config
	log      *zap.Logger
	registry *ecs.Registry
	bus      *ecs.EventBus
	renderer *render.Renderer
	bindings config.Bindings

	frame     *stats.Frame
	showStats bool
	last      time.Time
}

func New(cfg config.Config, log *zap.Logger) (*Game, error) {
	bindings, err := cfg.Keys.Bindings()
	if err != nil {
		return nil, err
	}

	registry := ecs.NewRegistry()
	bus := ecs.NewEventBus()
	renderer := render.NewRenderer(cfg.Assets.Dir)

	sprites, err := loadSprites(renderer)
	if err != nil {
		return nil, err
	}
	m, err := world.Load(filepath.Join(cfg.Assets.Dir, cfg.Assets.Map))
	if err != nil {
		return nil, err
	}
	if _, err := world.Spawn(registry, m, sprites, log); err != nil {
		return nil, err
	}

	viewport := mgl64.Vec2{float64(cfg.Window.Width), float64(cfg.Window.Height)}
	registry.AddSystem(systems.NewPlayerInput(bindings))
	registry.AddSystem(systems.NewMovement())
	registry.AddSystem(systems.NewAnimation())
	registry.AddSystem(systems.NewCollision())
	registry.AddSystem(systems.NewCameraFocus(viewport, m.PixelBounds()))

	// The render system doubles as the KeyPress handler for its own debug
	// toggle: one instance, two roles.
	rendSys := systems.NewRender(bindings.Debug)
	registry.AddSystem(rendSys)
	ecs.Subscribe[systems.KeyPress](bus, rendSys)
	ecs.Subscribe[systems.Contact](bus, systems.RemoveColliding{})

	return &Game{
		cfg:       cfg,
		log:       log,
		registry:  registry,
		bus:       bus,
		renderer:  renderer,
		bindings:  bindings,
		frame:     stats.NewFrame(cfg.Stats.HalfLife),
		showStats: cfg.Stats.Show,
	}, nil
}

func loadSprites(r *render.Renderer) (world.Sprites, error) {
	const atlas = "images/atlas.png"
	cell := func(i int) render.SpriteDef {
		return render.SpriteDef{Path: atlas, X: i * 32, W: 32, H: 32}
	}

	var sprites world.Sprites
	sprites.Tiles = make(map[world.TileType]render.SpriteID)
	var err error
	load := func(i int) render.SpriteID {
		if err != nil {
			return 0
		}
		var id render.SpriteID
		id, err = r.LoadSprite(cell(i))
		return id
	}

	sprites.Tiles[world.TileGrass] = load(0)
	sprites.Tiles[world.TileWater] = load(1)
	sprites.Tiles[world.TileSand] = load(2)
	sprites.Tree = load(3)
	sprites.Tank = load(4)
	sprites.Player = []render.SpriteID{load(5), load(6)}
	if err != nil {
		return sprites, fmt.Errorf("game: load sprites: %w", err)
	}
	return sprites, nil
}

func (g *Game) Update() error {
	now := time.Now()
	dt := 1.0 / 60.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
		if dt > maxDelta {
			dt = maxDelta
		}
	}
	g.last = now
	g.frame.Update(dt)

	keys := input.Snapshot()
	just := input.JustPressed()
	for _, k := range just {
		if k == g.bindings.Stats {
			g.showStats = !g.showStats
		}
	}

	// System order is part of gameplay correctness: input feeds movement,
	// collision resolves before the camera settles.
	args := systems.InputArgs{Keys: keys, JustPressed: just, Bus: g.bus}
	if err := ecs.RunSystem[*systems.PlayerInput](g.registry, args); err != nil {
		return err
	}
	if err := ecs.RunSystem[*systems.Movement](g.registry, dt); err != nil {
		return err
	}
	if err := ecs.RunSystem[*systems.Animation](g.registry, dt); err != nil {
		return err
	}
	if err := ecs.RunSystem[*systems.Collision](g.registry, g.bus); err != nil {
		return err
	}
	if err := ecs.RunSystem[*systems.CameraFocus](g.registry, render.API(g.renderer)); err != nil {
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if err := ecs.RunSystem[*systems.Render](g.registry, render.API(g.renderer)); err != nil {
		g.log.Error("render system", zap.Error(err))
		return
	}
	g.renderer.Flush(screen)

	if g.showStats {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %.2fms sd %.2fms p99 %.2fms",
			g.frame.Mean()*1000, g.frame.Std()*1000, g.frame.Percentile99()*1000))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
