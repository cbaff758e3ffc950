package probemap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewSet(t *testing.T) {
	ss := NewSet(4096)

	require.Equal(t, 4099, ss.Capacity())
	require.Len(t, ss.t.slots, 4099)
	require.Equal(t, 0, ss.Len())
}

func TestSet_Add(t *testing.T) {
	ss := NewSet(4096)

	ok := ss.Add("1")
	require.True(t, ok)

	ok = ss.Add("1")
	require.False(t, ok)

	require.True(t, ss.Has("1"))
	require.False(t, ss.Has("2"))
	require.Equal(t, 1, ss.Len())
}

func TestSet_Add_Grow(t *testing.T) {
	ss := NewSet(3)

	for i := range 100 {
		require.True(t, ss.Add(strconv.Itoa(i)))
	}

	require.Equal(t, 100, ss.Len())
	require.True(t, IsPrime(ss.Capacity()))
	require.Less(t, float64(ss.Len()-1)/float64(ss.Capacity()), 0.5)

	for i := range 100 {
		require.True(t, ss.Has(strconv.Itoa(i)))
	}
}

func TestSet_Tombstones(t *testing.T) {
	ss := NewSet(16, WithHashFunc(collisionHash))

	require.True(t, ss.Add("A")) // Slot 0
	require.True(t, ss.Add("B")) // Slot 1 (via probe)
	require.True(t, ss.Add("C")) // Slot 4 (via probe)

	// Delete the "bridge" element
	require.True(t, ss.Remove("B"))
	require.False(t, ss.Remove("B"))

	// Verify we can still find "C" even though there's a hole at "B"
	require.True(t, ss.Has("C"), "Probe chain broken: could not find 'C' after deleting 'B'")
	require.False(t, ss.Add("C"))

	stats := ss.Stats()
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, 1, stats.Tombstones)
}

func TestSet_Clear(t *testing.T) {
	ss := NewSet(11)

	for i := range 5 {
		ss.Add(strconv.Itoa(i))
	}

	ss.Clear()
	require.Equal(t, 0, ss.Len())
	require.Equal(t, 11, ss.Capacity())
	require.Empty(t, ss.Keys())
	require.False(t, ss.Has("0"))
}

func TestSet_Keys(t *testing.T) {
	ss := NewSet(10, WithHashFunc(HashFunction1))

	for _, k := range []string{"3", "1", "4", "0"} {
		ss.Add(k)
	}

	require.Equal(t, []string{"0", "1", "3", "4"}, ss.Keys())
}
