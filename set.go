package probemap

// Set is a set of strings backed by the same table as Map, storing no values.
type Set struct {
	t table[struct{}]
}

func NewSet(capacity int, opts ...Option) *Set {
	var s Set
	s.t.init(capacity, opts...)

	return &s
}

func (s *Set) Has(key string) bool {
	return s.t.has(key)
}

// Puts a key in the set. Returns whether a key is new.
func (s *Set) Add(key string) bool {
	return s.t.put(key, struct{}{})
}

// Deletes a key from the set. Returns whether it was present.
func (s *Set) Remove(key string) bool {
	return s.t.delete(key)
}

func (s *Set) Len() int {
	return s.t.size
}

func (s *Set) Capacity() int {
	return s.t.capacity
}

func (s *Set) Clear() {
	s.t.clear()
}

// Returns all keys in slot order.
func (s *Set) Keys() []string {
	entries := s.t.entries()

	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}

	return keys
}

func (s *Set) Stats() Stats {
	return s.t.stats()
}
