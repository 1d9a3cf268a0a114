// Package ecs is a generational entity-component-system store: entities are
// reusable numeric handles versioned by generation, components are typed
// values attached and queried at runtime, and systems maintain the subset of
// entities they care about incrementally as the world mutates.
package ecs

// Entity is a handle to a game object: a numeric id plus the generation it
// was issued under. A handle is only valid while its generation matches the
// allocator's current generation for that id; once the entity is removed the
// id may be reissued, but under a higher generation, so old copies of the
// handle can never alias the new entity.
type Entity struct {
	ID         uint32
	Generation uint32
}

// growthMargin is the head-room added when a backing array has to grow, so
// minting ids one at a time does not reallocate on every single create.
const growthMargin = 10

// allocator issues and recycles entity ids. It is the sole authority on
// liveness: nothing is ever physically erased, removal just bumps the id's
// generation, which invalidates every outstanding copy of the handle.
type allocator struct {
	nextID      uint32
	freeIDs     []uint32
	generations []uint32
}

// generation returns the current generation for an id. Ids beyond the end of
// the backing array have implicitly never been removed, so their generation
// is zero.
func (a *allocator) generation(id uint32) uint32 {
	if int(id) >= len(a.generations) {
		return 0
	}
	return a.generations[id]
}

func (a *allocator) create() Entity {
	if n := len(a.freeIDs); n > 0 {
		id := a.freeIDs[n-1]
		a.freeIDs = a.freeIDs[:n-1]
		return Entity{ID: id, Generation: a.generation(id)}
	}
	e := Entity{ID: a.nextID}
	a.nextID++
	return e
}

func (a *allocator) remove(e Entity) error {
	if !a.isAlive(e) {
		return ErrDeadEntity
	}
	if int(e.ID) >= len(a.generations) {
		grown := make([]uint32, int(e.ID)+growthMargin)
		copy(grown, a.generations)
		a.generations = grown
	}
	a.generations[e.ID]++
	a.freeIDs = append(a.freeIDs, e.ID)
	return nil
}

func (a *allocator) isAlive(e Entity) bool {
	return e.Generation == a.generation(e.ID)
}
