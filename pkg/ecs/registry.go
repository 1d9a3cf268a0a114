package ecs

import (
	"fmt"
	"reflect"
	"slices"
)

// tagSet is the set of component type tags currently attached to one entity.
type tagSet map[reflect.Type]struct{}

// covers reports whether every required tag is present.
func (t tagSet) covers(required []reflect.Type) bool {
	for _, tag := range required {
		if _, ok := t[tag]; !ok {
			return false
		}
	}
	return true
}

// World is the mutable surface systems and callers operate on. It is
// implemented by the Registry (mutations maintain interest sets immediately)
// and by the per-run View (interest maintenance is deferred until the run
// returns). The unexported methods seal the interface to this package.
type World interface {
	CreateEntity() Entity
	RemoveEntity(Entity) error
	IsAlive(Entity) bool
	IsDead(Entity) bool

	registry() *Registry
	created(Entity)
	removing(Entity)
	retagged(Entity)
}

// Registry owns the allocator, the component store, the entity tag index and
// every registered system, and is the sole entry point through which entities
// and components are mutated. There is no ambient instance: a Registry is
// constructed once at startup and passed explicitly.
type Registry struct {
	alloc   allocator
	store   store
	tags    map[Entity]tagSet
	systems map[reflect.Type]System
}

func NewRegistry() *Registry {
	return &Registry{
		store:   newStore(),
		tags:    make(map[Entity]tagSet),
		systems: make(map[reflect.Type]System),
	}
}

func (r *Registry) registry() *Registry { return r }

// created: a fresh entity has no components, so it cannot satisfy any system
// yet and no interest updates are needed.
func (r *Registry) created(Entity) {}

// removing tells every system to drop the entity before the handle becomes
// unreadable. Removal from a set that never held the entity is a no-op.
func (r *Registry) removing(e Entity) {
	for _, sys := range r.systems {
		sys.RemoveEntity(e)
	}
}

// retagged re-evaluates one entity's membership in every system after its
// tag set changed.
func (r *Registry) retagged(e Entity) {
	tags := r.tags[e]
	for _, sys := range r.systems {
		if tags.covers(sys.Required()) {
			sys.AddEntity(e)
		} else {
			sys.RemoveEntity(e)
		}
	}
}

func (r *Registry) CreateEntity() Entity {
	return createEntity(r)
}

func (r *Registry) RemoveEntity(e Entity) error {
	return removeEntity(r, e)
}

func (r *Registry) IsAlive(e Entity) bool { return r.alloc.isAlive(e) }
func (r *Registry) IsDead(e Entity) bool  { return !r.alloc.isAlive(e) }

// createEntity and removeEntity are shared by Registry and View; the hooks
// are the only behavioral difference between the two.
func createEntity(w World) Entity {
	r := w.registry()
	e := r.alloc.create()
	r.tags[e] = make(tagSet)
	w.created(e)
	return e
}

func removeEntity(w World, e Entity) error {
	r := w.registry()
	if !r.alloc.isAlive(e) {
		return ErrDeadEntity
	}
	w.removing(e)
	delete(r.tags, e)
	return r.alloc.remove(e)
}

// AddComponent attaches a value of type T to the entity, overwriting any
// existing value. The pool for T is created lazily on first use.
func AddComponent[T any](w World, e Entity, value T) error {
	r := w.registry()
	if !r.alloc.isAlive(e) {
		return ErrDeadEntity
	}
	ensurePool[T](&r.store).set(e, value)
	r.tags[e][Tag[T]()] = struct{}{}
	w.retagged(e)
	return nil
}

// RemoveComponent detaches T from the entity. The missing-pool check comes
// first so that naming a type never used anywhere reports
// ErrNoSuchComponentType even for a dead handle.
func RemoveComponent[T any](w World, e Entity) error {
	r := w.registry()
	p, ok := poolOf[T](&r.store)
	if !ok {
		return ErrNoSuchComponentType
	}
	if !r.alloc.isAlive(e) {
		return ErrDeadEntity
	}
	p.clear(e)
	delete(r.tags[e], Tag[T]())
	w.retagged(e)
	return nil
}

// GetComponent returns a pointer to the entity's T, usable for both reads
// and in-place mutation. A nil pointer with a nil error means the entity is
// alive but has no such component (or no pool for T exists at all); consult
// the tag index via EntitiesAndComponents to tell those apart. The pointer
// is only valid until the next structural change to T's pool.
func GetComponent[T any](w World, e Entity) (*T, error) {
	r := w.registry()
	if !r.alloc.isAlive(e) {
		return nil, ErrDeadEntity
	}
	p, ok := poolOf[T](&r.store)
	if !ok {
		return nil, nil
	}
	return p.get(e), nil
}

// AddSystem registers a system keyed by its concrete type, first backfilling
// its interest set with every live entity already satisfying it. This is the
// only full scan in steady-state operation.
func (r *Registry) AddSystem(sys System) {
	for e, tags := range r.tags {
		if tags.covers(sys.Required()) {
			sys.AddEntity(e)
		}
	}
	r.systems[reflect.TypeOf(sys)] = sys
}

// RemoveSystem drops the system registered as S. Other systems hold their
// own interest sets independently, so no further bookkeeping is needed.
func RemoveSystem[S System](r *Registry) {
	delete(r.systems, reflect.TypeFor[S]())
}

// RunSystem invokes the system registered as S with the given input. The
// system runs against a change-tracking View; once it returns, every entity
// it created, removed or retagged is reconciled against every registered
// system's interest set. Entities a run makes eligible for a system
// (including the running one) therefore only join interest sets after the
// run, never mid-iteration.
func RunSystem[S System, I any](r *Registry, input I) error {
	sys, ok := r.systems[reflect.TypeFor[S]()]
	if !ok {
		return ErrNoSuchSystem
	}
	runner, ok := sys.(interface{ Run(*View, I) })
	if !ok {
		return fmt.Errorf("system %v takes no input of type %T: %w",
			reflect.TypeFor[S](), input, ErrNoSuchSystem)
	}
	v := &View{reg: r, touched: make(map[Entity]struct{})}
	runner.Run(v, input)
	r.reconcile(v.touched)
	return nil
}

func (r *Registry) reconcile(touched map[Entity]struct{}) {
	for e := range touched {
		tags, live := r.tags[e]
		for _, sys := range r.systems {
			if live && tags.covers(sys.Required()) {
				sys.AddEntity(e)
			} else {
				sys.RemoveEntity(e)
			}
		}
	}
}

// Entities returns every live entity, ordered by id.
func (r *Registry) Entities() []Entity {
	out := make([]Entity, 0, len(r.tags))
	for e := range r.tags {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entity) int {
		return int(a.ID) - int(b.ID)
	})
	return out
}

// EntityComponents pairs a live entity with the tags of its attached
// component types.
type EntityComponents struct {
	Entity     Entity
	Components []reflect.Type
}

// EntitiesAndComponents returns every live entity with its component type
// tags, ordered by id.
func (r *Registry) EntitiesAndComponents() []EntityComponents {
	out := make([]EntityComponents, 0, len(r.tags))
	for e, tags := range r.tags {
		ec := EntityComponents{Entity: e, Components: make([]reflect.Type, 0, len(tags))}
		for tag := range tags {
			ec.Components = append(ec.Components, tag)
		}
		out = append(out, ec)
	}
	slices.SortFunc(out, func(a, b EntityComponents) int {
		return int(a.Entity.ID) - int(b.Entity.ID)
	})
	return out
}
