package ecs

// entityStore tracks entity generations and free ids.
type entityStore struct {
	gens  []generation
	alive []bool
	free  []entityID
}

func (s *entityStore) create() Entity {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.alive[id-1] = true
		return makeEntity(id, s.gens[id-1])
	}
	s.gens = append(s.gens, 0)
	s.alive = append(s.alive, true)
	return makeEntity(entityID(len(s.gens)), 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gens[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.alive[id-1] && s.gens[id-1] == e.generation()
}

func (s *entityStore) each(fn func(Entity)) {
	for i, ok := range s.alive {
		if ok {
			fn(makeEntity(entityID(i+1), s.gens[i]))
		}
	}
}
