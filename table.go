package probemap

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap"
)

// Growth is triggered before a put once size/capacity reaches this ratio.
const maxLoad = 0.5

type table[V any] struct {
	slots []slot[V]

	capacity int
	size     int

	hashFunc HashFunc
	logger   *zap.Logger
}

type options struct {
	hashFunc HashFunc
	logger   *zap.Logger
}

type Option func(o *options)

// Override default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(o *options) {
		o.hashFunc = f
	}
}

// Log resize events to the given logger. Tables are silent by default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (t *table[V]) init(capacity int, opts ...Option) {
	o := options{
		hashFunc: DefaultHashFunc,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.hashFunc == nil {
		o.hashFunc = DefaultHashFunc
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	t.hashFunc = o.hashFunc
	t.logger = o.logger
	t.capacity = NextPrime(capacity)
	t.slots = make([]slot[V], t.capacity)
	t.size = 0
}

func (t *table[V]) start(key string) int {
	return int(t.hashFunc(key) % uint64(t.capacity))
}

// lookup walks the probe sequence of key and returns the index of its live
// slot, or -1. The walk stops at the first empty slot or after capacity
// probes, since quadratic probing is not guaranteed to visit every slot.
func (t *table[V]) lookup(key string) int {
	pos := t.start(key)

	for p := 0; p < t.capacity; p++ {
		s := &t.slots[pos]
		if s.isEmpty() {
			return -1
		}

		if s.isFull() && s.key == key {
			return pos
		}

		// (start + (p+1)²) - (start + p²) = 2p + 1
		pos = (pos + 2*p + 1) % t.capacity
	}

	return -1
}

func (t *table[V]) get(key string) (V, bool) {
	if idx := t.lookup(key); idx >= 0 {
		return t.slots[idx].value, true
	}

	var zero V

	return zero, false
}

func (t *table[V]) has(key string) bool {
	return t.lookup(key) >= 0
}

// put inserts or updates key and reports whether the key is new.
//
// Termination relies on the growth check: with a prime capacity the first
// (capacity+1)/2 probes land on distinct slots, and fewer than half of the
// slots are live when probing starts, so a non-live slot is always reached.
func (t *table[V]) put(key string, value V) bool {
	if t.load() >= maxLoad {
		t.resize(t.capacity * 2)
	}

	var (
		pos       = t.start(key)
		tombstone = -1
	)

	for p := 0; p < t.capacity; p++ {
		s := &t.slots[pos]

		switch {
		case s.isEmpty():
			if tombstone >= 0 {
				s = &t.slots[tombstone]
			}

			t.place(s, key, value)

			return true
		case s.isFull():
			if s.key == key {
				s.value = value
				return false
			}
		default:
			// Keep walking: the key may still live further down the chain.
			if tombstone < 0 {
				tombstone = pos
			}
		}

		pos = (pos + 2*p + 1) % t.capacity
	}

	if tombstone >= 0 {
		t.place(&t.slots[tombstone], key, value)
		return true
	}

	panic(fmt.Sprintf(
		"probemap: probe sequence exhausted (size=%d, capacity=%d)", t.size, t.capacity,
	))
}

func (t *table[V]) place(s *slot[V], key string, value V) {
	s.ctrl = slotFull
	s.key = key
	s.value = value
	t.size++
}

func (t *table[V]) delete(key string) bool {
	idx := t.lookup(key)
	if idx < 0 {
		return false
	}

	// Mark as deleted to preserve the probe chain. The key stays for the
	// dump, the value is released.
	var zero V

	s := &t.slots[idx]
	s.ctrl = slotDeleted
	s.value = zero
	t.size--

	return true
}

// resize rebuilds the table with at least newCapacity slots. Requests
// below the current size are ignored. Live entries are re-inserted in slot
// order and tombstones are dropped.
func (t *table[V]) resize(newCapacity int) {
	if newCapacity < t.size {
		return
	}

	newCapacity = NextPrime(newCapacity)
	old := t.slots

	t.logger.Debug("resizing table",
		zap.Int("from", t.capacity),
		zap.Int("to", newCapacity),
		zap.Int("size", t.size),
	)

	t.slots = make([]slot[V], newCapacity)
	t.capacity = newCapacity
	t.size = 0

	for i := range old {
		if s := &old[i]; s.isFull() {
			// May grow the table again if newCapacity leaves it half full.
			t.put(s.key, s.value)
		}
	}
}

func (t *table[V]) load() float64 {
	return float64(t.size) / float64(t.capacity)
}

func (t *table[V]) emptyBuckets() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].isEmpty() {
			n++
		}
	}

	return n
}

func (t *table[V]) tombstones() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].ctrl == slotDeleted {
			n++
		}
	}

	return n
}

func (t *table[V]) clear() {
	clear(t.slots)
	t.size = 0
}

func (t *table[V]) entries() []Entry[V] {
	entries := make([]Entry[V], 0, t.size)
	for i := range t.slots {
		if s := &t.slots[i]; s.isFull() {
			entries = append(entries, Entry[V]{Key: s.key, Value: s.value})
		}
	}

	return entries
}

func (t *table[V]) stats() Stats {
	tombstones := t.tombstones()

	st := Stats{
		Size:         t.size,
		Capacity:     t.capacity,
		EmptyBuckets: t.emptyBuckets(),
		Tombstones:   tombstones,
		Load:         t.load(),
	}

	st.TombstonesCapacityRatio = float32(tombstones) / float32(t.capacity)
	if t.size > 0 {
		st.TombstonesSizeRatio = float32(tombstones) / float32(t.size)
	}

	return st
}

// String dumps every slot on its own line, for diagnostics.
func (t *table[V]) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i := range t.slots {
		s := &t.slots[i]
		if s.isEmpty() {
			fmt.Fprintf(buf, "%d: None\n", i)
			continue
		}

		fmt.Fprintf(buf, "%d: K: %s V: %v TS: %t\n", i, s.key, s.value, s.ctrl == slotDeleted)
	}

	return buf.String()
}
