package ecs

import "reflect"

// Handler reacts to events of type E with mutable access to the world. A
// handler may be the same object as a registered System, letting one
// instance both run per-tick logic and react to ad-hoc events.
type Handler[E any] interface {
	Handle(v *View, event E)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc[E any] func(v *View, event E)

func (f HandlerFunc[E]) Handle(v *View, event E) { f(v, event) }

// EventBus is a type-keyed publish/subscribe layer. Dispatch is synchronous
// and runs handlers in registration order; it is how systems communicate
// without holding references to each other.
type EventBus struct {
	handlers map[reflect.Type][]any
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[reflect.Type][]any)}
}

// Subscribe appends the handler to the ordered list for event type E.
func Subscribe[E any](b *EventBus, h Handler[E]) {
	tag := Tag[E]()
	b.handlers[tag] = append(b.handlers[tag], h)
}

// Dispatch invokes every subscriber for E in registration order, passing the
// current view so handler mutations are reconciled by the enclosing run.
// Dispatching an event nobody subscribed to is a no-op.
func Dispatch[E any](b *EventBus, v *View, event E) {
	for _, h := range b.handlers[Tag[E]()] {
		h.(Handler[E]).Handle(v, event)
	}
}
