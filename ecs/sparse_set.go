package ecs

// SparseSet is a cache-friendly storage for components keyed by entity id.
// Values are stored as `any`; the typed accessors in generics.go cast them back.
type SparseSet struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int
}

// Has returns true if the entity has a value in the set.
func (s *SparseSet) Has(e Entity) bool {
	idx, ok := s.index(e)
	return ok && s.denseEntities[idx] == e
}

// Get returns the value stored for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	if !s.Has(e) {
		return nil
	}
	idx, _ := s.index(e)
	return s.denseValues[idx]
}

// Set inserts or updates the value for e.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || e.id() == 0 {
		return
	}
	slot := int(e.id()) - 1
	for slot >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.sparse[slot]; idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx].id() == e.id() {
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[slot] = len(s.denseEntities) - 1
}

// Remove deletes the value for e if present.
func (s *SparseSet) Remove(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	idx, _ := s.index(e)
	last := len(s.denseEntities) - 1
	moved := s.denseEntities[last]

	s.denseEntities[idx] = moved
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[moved.id()-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[e.id()-1] = -1
	return true
}

// Len reports how many values the set holds.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns the dense entity list.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

// Values returns the dense value list.
func (s *SparseSet) Values() []any {
	if s == nil {
		return nil
	}
	return s.denseValues
}

func (s *SparseSet) index(e Entity) (int, bool) {
	if s == nil || e.id() == 0 {
		return 0, false
	}
	slot := int(e.id()) - 1
	if slot >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[slot]
	if idx < 0 || idx >= len(s.denseEntities) {
		return 0, false
	}
	return idx, true
}
