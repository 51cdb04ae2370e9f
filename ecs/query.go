package ecs

// intersectEntities returns entities present in every set.
func intersectEntities(sets []*SparseSet) []Entity {
	if len(sets) == 0 {
		return nil
	}
	// iterate smallest set
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		inAll := true
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, e)
		}
	}
	return out
}
