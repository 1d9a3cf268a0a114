package ecs

import "reflect"

// slot stores one entity's value of a component type, stamped with the
// generation that wrote it. The stamp makes the pool itself generation-aware:
// a stale handle can never read a reused id's fresh data even without
// consulting the allocator.
type slot[T any] struct {
	generation uint32
	value      T
	present    bool
}

// pool is the per-component-type sparse storage, indexed by entity id.
type pool[T any] struct {
	slots []slot[T]
}

// get returns a pointer to the stored value, or nil if the slot is empty or
// was written under an older generation than the handle's.
func (p *pool[T]) get(e Entity) *T {
	if int(e.ID) >= len(p.slots) {
		return nil
	}
	s := &p.slots[e.ID]
	if s.generation < e.Generation || !s.present {
		return nil
	}
	return &s.value
}

func (p *pool[T]) set(e Entity, value T) {
	if int(e.ID) >= len(p.slots) {
		grown := make([]slot[T], int(e.ID)+growthMargin)
		copy(grown, p.slots)
		p.slots = grown
	}
	p.slots[e.ID] = slot[T]{generation: e.Generation, value: value, present: true}
}

// clear drops the value but keeps the generation stamp.
func (p *pool[T]) clear(e Entity) {
	if int(e.ID) >= len(p.slots) {
		return
	}
	s := &p.slots[e.ID]
	var zero T
	s.value = zero
	s.present = false
}

// store holds one pool per component type behind a runtime type tag.
type store struct {
	pools map[reflect.Type]any
}

func newStore() store {
	return store{pools: make(map[reflect.Type]any)}
}

// poolOf recovers the concrete pool for T. This is the only place in the
// package allowed to assume that the pool behind T's tag has element type T;
// the assertion cannot fail because the map is only ever written by ensurePool.
func poolOf[T any](s *store) (*pool[T], bool) {
	raw, ok := s.pools[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return raw.(*pool[T]), true
}

// ensurePool returns T's pool, creating it on first use.
func ensurePool[T any](s *store) *pool[T] {
	if p, ok := poolOf[T](s); ok {
		return p
	}
	p := &pool[T]{}
	s.pools[reflect.TypeFor[T]()] = p
	return p
}
