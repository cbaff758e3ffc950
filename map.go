// Package probemap provides a string-keyed hash table using open addressing
// with quadratic probing over a prime number of slots. Deleted entries leave
// tombstones behind, which are reclaimed by later inserts or dropped on resize.
// The table doubles once half of its slots are live.
//
// Tables are not safe for concurrent use.
package probemap

import "iter"

// Map is a string-keyed map with values of type V.
type Map[V any] struct {
	table[V]
}

// Returns a new instance of the map. The capacity is raised to the next prime.
func New[V any](capacity int, opts ...Option) *Map[V] {
	var m Map[V]
	m.init(capacity, opts...)

	return &m
}

// Returns the value stored for key.
func (m *Map[V]) Get(key string) (V, bool) {
	return m.get(key)
}

// Checks whether a key is in the map.
func (m *Map[V]) ContainsKey(key string) bool {
	return m.has(key)
}

// Puts a key in the map, replacing the value if it is already present.
// Returns whether the key is new.
func (m *Map[V]) Put(key string, value V) bool {
	return m.put(key, value)
}

// Removes a key from the map. Returns whether it was present.
func (m *Map[V]) Remove(key string) bool {
	return m.delete(key)
}

// Rebuilds the map with the next prime capacity >= newCapacity, dropping all
// tombstones. A capacity below the current number of entries is ignored.
func (m *Map[V]) Resize(newCapacity int) {
	m.resize(newCapacity)
}

// Removes every entry, keeping the capacity.
func (m *Map[V]) Clear() {
	m.clear()
}

// Returns the number of entries.
func (m *Map[V]) Len() int {
	return m.size
}

// Returns the number of slots.
func (m *Map[V]) Capacity() int {
	return m.capacity
}

// Returns the ratio of entries to slots.
func (m *Map[V]) Load() float64 {
	return m.load()
}

// Returns the number of slots that were never used since the last
// resize or clear. Tombstones are not empty.
func (m *Map[V]) EmptyBuckets() int {
	return m.emptyBuckets()
}

// Returns all entries in slot order.
func (m *Map[V]) Entries() []Entry[V] {
	return m.entries()
}

func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, m.size)
	for it := m.Iter(); it.Next(); {
		keys = append(keys, it.Key())
	}

	return keys
}

func (m *Map[V]) Values() []V {
	values := make([]V, 0, m.size)
	for it := m.Iter(); it.Next(); {
		values = append(values, it.Value())
	}

	return values
}

// Returns an iterator positioned before the first slot.
func (m *Map[V]) Iter() *Iterator[V] {
	return &Iterator[V]{t: &m.table, idx: -1}
}

// All yields every entry in slot order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

func (m *Map[V]) Stats() Stats {
	return m.stats()
}
