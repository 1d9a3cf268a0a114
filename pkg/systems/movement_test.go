package systems_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"grove/pkg/components"
	"grove/pkg/ecs"
	"grove/pkg/systems"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	r := ecs.NewRegistry()
	e := r.CreateEntity()
	ecs.AddComponent(r, e, components.RigidBody{
		Position: mgl64.Vec2{0, 0},
		Velocity: mgl64.Vec2{1, 0},
	})
	r.AddSystem(systems.NewMovement())

	if err := ecs.RunSystem[*systems.Movement](r, 1.0); err != nil {
		t.Fatalf("run: %v", err)
	}
	body, _ := ecs.GetComponent[components.RigidBody](r, e)
	if body.Position != (mgl64.Vec2{1, 0}) {
		t.Fatalf("position after dt=1: %v, want (1,0)", body.Position)
	}

	if err := ecs.RunSystem[*systems.Movement](r, 2.0); err != nil {
		t.Fatalf("run: %v", err)
	}
	body, _ = ecs.GetComponent[components.RigidBody](r, e)
	if body.Position != (mgl64.Vec2{3, 0}) {
		t.Fatalf("position after dt=2: %v, want (3,0)", body.Position)
	}
}

func TestMovementIgnoresStationaryAndTracksOnlyBodies(t *testing.T) {
	r := ecs.NewRegistry()
	still := r.CreateEntity()
	ecs.AddComponent(r, still, components.RigidBody{Position: mgl64.Vec2{5, 5}})
	bare := r.CreateEntity()

	sys := systems.NewMovement()
	r.AddSystem(sys)

	if sys.Contains(bare) {
		t.Error("entity without RigidBody tracked by movement")
	}
	if err := ecs.RunSystem[*systems.Movement](r, 1.0); err != nil {
		t.Fatalf("run: %v", err)
	}
	body, _ := ecs.GetComponent[components.RigidBody](r, still)
	if body.Position != (mgl64.Vec2{5, 5}) {
		t.Errorf("stationary entity moved to %v", body.Position)
	}
}
