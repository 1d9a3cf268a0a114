package ecs

import (
	"reflect"
	"slices"
)

// Tag returns the runtime type tag for a component or event type.
func Tag[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// System is the untyped bookkeeping capability every system exposes to the
// Registry: the component types it requires and mutation of its interest set.
// The typed per-tick entry point is separate: a system additionally declares
//
//	Run(view *View, input I)
//
// for its own input type I, discovered at the RunSystem call site. Keeping
// the two apart means the bookkeeping path never needs to know a system's
// input type.
type System interface {
	Required() []reflect.Type
	AddEntity(Entity)
	RemoveEntity(Entity)
}

// Interest implements the bookkeeping half of System. Domain systems embed
// it and supply their own Run method.
type Interest struct {
	required []reflect.Type
	entities map[Entity]struct{}
}

func NewInterest(required ...reflect.Type) Interest {
	return Interest{
		required: required,
		entities: make(map[Entity]struct{}),
	}
}

func (in *Interest) Required() []reflect.Type {
	return in.required
}

func (in *Interest) AddEntity(e Entity) {
	in.entities[e] = struct{}{}
}

func (in *Interest) RemoveEntity(e Entity) {
	delete(in.entities, e)
}

func (in *Interest) Contains(e Entity) bool {
	_, ok := in.entities[e]
	return ok
}

func (in *Interest) Len() int {
	return len(in.entities)
}

// Entities returns a snapshot of the interest set ordered by id. Iterating
// the snapshot keeps a system safe against its own structural mutations, and
// the ordering keeps runs deterministic.
func (in *Interest) Entities() []Entity {
	out := make([]Entity, 0, len(in.entities))
	for e := range in.entities {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entity) int {
		if a.ID != b.ID {
			return int(a.ID) - int(b.ID)
		}
		return int(a.Generation) - int(b.Generation)
	})
	return out
}
