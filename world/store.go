package world

// Store holds one component type keyed by entity. Iteration follows insertion
// order so that queries are deterministic from tick to tick.
type Store[T any] struct {
	components map[Entity]T
	entities   []Entity
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]T),
		entities:   make([]Entity, 0, 64),
	}
}

// Set inserts or replaces the component for e.
func (s *Store[T]) Set(e Entity, val T) {
	if _, ok := s.components[e]; !ok {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

func (s *Store[T]) Get(e Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove keeps the order of the remaining entities.
func (s *Store[T]) Remove(e Entity) {
	if _, ok := s.components[e]; !ok {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Entities returns a copy, so callers may mutate the store while ranging.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

func (s *Store[T]) Len() int {
	return len(s.entities)
}

func (s *Store[T]) ForEach(callback func(Entity, T)) {
	for _, e := range s.Entities() {
		if val, ok := s.components[e]; ok {
			callback(e, val)
		}
	}
}

func (s *Store[T]) Clear() {
	s.components = make(map[Entity]T)
	s.entities = s.entities[:0]
}
