package systems_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"grove/pkg/components"
	"grove/pkg/ecs"
	"grove/pkg/render"
	"grove/pkg/systems"
)

func TestRenderSubmitsSprites(t *testing.T) {
	r := ecs.NewRegistry()

	scaled := r.CreateEntity()
	ecs.AddComponent(r, scaled, components.RigidBody{Position: mgl64.Vec2{10, 20}})
	ecs.AddComponent(r, scaled, components.Sprite{ID: 3, Depth: 0.5, Size: mgl64.Vec2{32, 32}})

	natural := r.CreateEntity()
	ecs.AddComponent(r, natural, components.RigidBody{Position: mgl64.Vec2{50, 60}})
	ecs.AddComponent(r, natural, components.Sprite{ID: 4, Depth: 1})

	invisible := r.CreateEntity()
	ecs.AddComponent(r, invisible, components.RigidBody{})

	r.AddSystem(systems.NewRender(ebiten.KeyB))
	f := &fakeRenderer{}
	if err := ecs.RunSystem[*systems.Render](r, render.API(f)); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(f.draws) != 2 {
		t.Fatalf("%d draws, want 2", len(f.draws))
	}
	if f.draws[0].id != 3 || f.draws[0].size != (mgl64.Vec2{32, 32}) {
		t.Errorf("scaled draw = %+v", f.draws[0])
	}
	if f.draws[1].id != 4 || f.draws[1].size != (mgl64.Vec2{}) {
		t.Errorf("natural draw = %+v", f.draws[1])
	}
	if len(f.rects) != 0 {
		t.Error("collider outlines drawn without debug toggle")
	}
}

func TestRenderDebugToggleViaKeyPress(t *testing.T) {
	r := ecs.NewRegistry()
	bus := ecs.NewEventBus()

	e := r.CreateEntity()
	ecs.AddComponent(r, e, components.RigidBody{Position: mgl64.Vec2{1, 2}})
	ecs.AddComponent(r, e, components.Sprite{ID: 1, Size: mgl64.Vec2{32, 32}})
	ecs.AddComponent(r, e, components.Collider{Size: mgl64.Vec2{32, 32}})

	// One instance, registered as a system and subscribed as a handler.
	rend := systems.NewRender(ebiten.KeyB)
	r.AddSystem(rend)
	ecs.Subscribe[systems.KeyPress](bus, rend)

	bindings := defaultBindings(t)
	r.AddSystem(systems.NewPlayerInput(bindings))

	press := func(k ebiten.Key) {
		t.Helper()
		args := systems.InputArgs{Keys: keysOf(), JustPressed: []ebiten.Key{k}, Bus: bus}
		if err := ecs.RunSystem[*systems.PlayerInput](r, args); err != nil {
			t.Fatal(err)
		}
	}
	draw := func() *fakeRenderer {
		t.Helper()
		f := &fakeRenderer{}
		if err := ecs.RunSystem[*systems.Render](r, render.API(f)); err != nil {
			t.Fatal(err)
		}
		return f
	}

	if f := draw(); len(f.rects) != 0 {
		t.Fatal("outlines on before any toggle")
	}

	press(ebiten.KeyB)
	f := draw()
	if len(f.rects) != 1 {
		t.Fatalf("%d outlines after toggle, want 1", len(f.rects))
	}
	if f.rects[0].pos != (mgl64.Vec2{1, 2}) || f.rects[0].size != (mgl64.Vec2{32, 32}) {
		t.Errorf("outline = %+v", f.rects[0])
	}

	// Unrelated keys don't toggle; pressing the bound key again turns it off.
	press(ebiten.KeyQ)
	if f := draw(); len(f.rects) != 1 {
		t.Error("unrelated key changed the toggle")
	}
	press(ebiten.KeyB)
	if f := draw(); len(f.rects) != 0 {
		t.Error("second toggle did not turn outlines off")
	}
}
