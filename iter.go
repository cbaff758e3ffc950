package probemap

// Iterator walks the live slots of a table in index order. The table must
// not be modified while an iterator is in use.
type Iterator[V any] struct {
	t   *table[V]
	idx int
}

// Next advances to the next live entry and reports whether there is one.
// It must be called before reading the first entry.
func (it *Iterator[V]) Next() bool {
	for it.idx++; it.idx < len(it.t.slots); it.idx++ {
		if it.t.slots[it.idx].isFull() {
			return true
		}
	}

	it.idx = len(it.t.slots)

	return false
}

// Reset rewinds the iterator to the first slot.
func (it *Iterator[V]) Reset() {
	it.idx = -1
}

func (it *Iterator[V]) Key() string {
	return it.t.slots[it.idx].key
}

func (it *Iterator[V]) Value() V {
	return it.t.slots[it.idx].value
}

func (it *Iterator[V]) Entry() Entry[V] {
	s := &it.t.slots[it.idx]

	return Entry[V]{Key: s.key, Value: s.value}
}
