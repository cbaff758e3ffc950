package probemap

const (
	// The zero value must stay slotEmpty, so a freshly made slot slice is
	// entirely empty without an initialization pass.
	slotEmpty   uint8 = 0x00
	slotFull    uint8 = 0x01
	slotDeleted uint8 = 0xFE
)

type slot[V any] struct {
	// Control state: slotEmpty, slotFull or slotDeleted (tombstone).
	ctrl uint8

	key   string
	value V
}

func (s *slot[V]) isFull() bool {
	return s.ctrl == slotFull
}

func (s *slot[V]) isEmpty() bool {
	return s.ctrl == slotEmpty
}

// Entry is a single key/value pair stored in a table.
type Entry[V any] struct {
	Key   string
	Value V
}
