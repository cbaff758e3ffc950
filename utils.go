package probemap

import "unsafe"

// Returns the smallest prime that is greater than or equal to `v`.
// Even values are bumped to the next odd candidate first, values below 1
// are treated as 1, so the result is never less than 3.
func NextPrime(v int) int {
	if v < 1 {
		v = 1
	}

	if v%2 == 0 {
		v++
	}

	for !IsPrime(v) {
		v += 2
	}

	return v
}

// Reports whether `v` is prime, using trial division by odd factors up to √v.
func IsPrime(v int) bool {
	if v == 2 || v == 3 {
		return true
	}

	if v < 2 || v%2 == 0 {
		return false
	}

	for f := 3; f*f <= v; f += 2 {
		if v%f == 0 {
			return false
		}
	}

	return true
}

func prevPrime(v int) int {
	for ; v >= 2; v-- {
		if IsPrime(v) {
			return v
		}
	}

	return 0
}

// Estimates capacity (number of slots) from the given memory size in bytes.
// The result is the largest prime slot count that fits, or 0 if fewer than
// two slots fit.
func CapacityFromSize[V any](size uintptr) int {
	sizeOfSlot := unsafe.Sizeof(slot[V]{})

	return prevPrime(int(size / sizeOfSlot))
}
