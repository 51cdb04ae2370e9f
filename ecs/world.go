package ecs

import (
	"sort"

	"github.com/milk9111/pong/ecs/component"
)

// World owns entities, their component stores and the per-frame event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and marks it dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	var out []Entity
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// Query returns live entities that carry every listed component, sorted by id.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		store := w.stores[k.ID()]
		if store == nil {
			return nil
		}
		sets = append(sets, store)
	}
	out := intersectEntities(sets)
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest-id live entity carrying every listed component.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
