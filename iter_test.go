package idxarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	a := NewFunc(func(i uint16) int { return int(i) })

	next := 0
	for i, v := range a.All() {
		require.Equal(t, uint16(next), i)
		require.Equal(t, next, v)
		next++
	}
	assert.Equal(t, 65536, next)

	// Restartable.
	count := 0
	for range a.All() {
		count++
	}
	assert.Equal(t, 65536, count)
}

func TestValues(t *testing.T) {
	a := NewFunc(func(i uint8) uint8 { return i })

	var got []uint8
	for v := range a.Values() {
		got = append(got, v)
	}
	require.Len(t, got, 256)
	for i, v := range got {
		assert.Equal(t, uint8(i), v)
	}
}

func TestPointers(t *testing.T) {
	a := NewU8[int]()

	seen := 0
	for i, p := range a.Pointers() {
		require.Equal(t, uint8(seen), i)
		*p = int(i) * 10
		seen++
	}
	assert.Equal(t, 256, seen)

	for i, v := range a.All() {
		require.Equal(t, int(i)*10, v)
	}
}

func TestDrain(t *testing.T) {
	a := NewFunc(func(i uint8) *int { n := int(i); return &n })

	next := 0
	for p := range a.Drain() {
		require.NotNil(t, p)
		require.Equal(t, next, *p)
		next++
	}
	assert.Equal(t, 256, next)

	for v := range a.Values() {
		require.Nil(t, v)
	}
	assert.Equal(t, 256, a.Len())
}

func TestDrain_StopEarly(t *testing.T) {
	a := NewU8WithDefault(1)

	taken := 0
	for range a.Drain() {
		taken++
		if taken == 10 {
			break
		}
	}

	assert.Zero(t, a.Get(9))
	assert.Equal(t, 1, a.Get(10))
}

func TestIteration_ZeroValue(t *testing.T) {
	var a U16Array[string]

	count := 0
	for range a.Drain() {
		count++
	}
	assert.Equal(t, 65536, count)

	for i, p := range a.Pointers() {
		*p = "set"
		if i == 3 {
			break
		}
	}
	assert.Equal(t, "set", a.Get(3))
	assert.Empty(t, a.Get(4))
}

func TestIteration_EarlyBreak(t *testing.T) {
	a := NewU8[int]()

	n := 0
	for range a.All() {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)

	n = 0
	for range a.Values() {
		n++
		if n == 7 {
			break
		}
	}
	assert.Equal(t, 7, n)
}
