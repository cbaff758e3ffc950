package probemap

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

// HashFunc maps a key to a non-negative integer. It must be deterministic
// for the lifetime of a table.
type HashFunc func(key string) uint64

// DefaultHashFunc is the hash used when no WithHashFunc option is given.
func DefaultHashFunc(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Returns a hash function seeded per call, so two tables built with
// separate calls distribute the same keys differently.
func MakeSeededHashFunc() HashFunc {
	h := maphash.NewHasher[string]()

	return h.Hash
}

// HashFunction1 sums the code points of the key.
func HashFunction1(key string) uint64 {
	var hash uint64
	for _, r := range key {
		hash += uint64(r)
	}

	return hash
}

// HashFunction2 sums the code points of the key weighted by their
// one-based position.
func HashFunction2(key string) uint64 {
	var (
		hash  uint64
		index uint64
	)

	for _, r := range key {
		index++
		hash += index * uint64(r)
	}

	return hash
}
