package ecs

import "github.com/milk9111/pong/ecs/component"

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	value, ok := w.store(kind.ID(), false).Get(e).(*T)
	return value, ok
}

// First returns the lowest-id entity with the component and its value.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	e, ok := w.First(kind)
	if !ok {
		return 0, nil, false
	}
	v, ok := Get(w, e, kind)
	return e, v, ok
}

func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range w.Query(kind) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ka, kb, kc) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}
