package ecs

// View is the exclusive window onto the Registry handed to a system for the
// duration of one run (and to event handlers it dispatches to). Structural
// mutations made through it take effect immediately in the store and the
// allocator, but interest sets are left alone until the run returns: the
// View just records which entities were touched, and RunSystem reconciles
// them afterwards. That lets a system create and destroy entities freely
// while iterating a snapshot of its own interest set.
type View struct {
	reg     *Registry
	touched map[Entity]struct{}
}

func (v *View) registry() *Registry { return v.reg }

func (v *View) created(e Entity)  { v.touched[e] = struct{}{} }
func (v *View) removing(e Entity) { v.touched[e] = struct{}{} }
func (v *View) retagged(e Entity) { v.touched[e] = struct{}{} }

func (v *View) CreateEntity() Entity        { return createEntity(v) }
func (v *View) RemoveEntity(e Entity) error { return removeEntity(v, e) }

func (v *View) IsAlive(e Entity) bool { return v.reg.alloc.isAlive(e) }
func (v *View) IsDead(e Entity) bool  { return !v.reg.alloc.isAlive(e) }

// Entities returns every live entity, ordered by id.
func (v *View) Entities() []Entity { return v.reg.Entities() }
