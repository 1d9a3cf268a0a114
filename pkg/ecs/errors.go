package ecs

import "errors"

var (
	// ErrDeadEntity reports an operation on a handle whose generation is
	// stale: the entity was removed, and its id may since belong to a
	// different entity.
	ErrDeadEntity = errors.New("ecs: dead entity")

	// ErrNoSuchComponentType reports an operation naming a component type
	// that has never been added to any entity.
	ErrNoSuchComponentType = errors.New("ecs: no such component type")

	// ErrNoSuchSystem reports a run or lookup of a system type that was
	// never registered.
	ErrNoSuchSystem = errors.New("ecs: no such system")
)
