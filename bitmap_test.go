package idxarray

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	a := NewU16[int]()
	b := a.Clone()

	assert.True(t, Diff(a, b).IsEmpty())

	b.Set(0, 1)
	b.Set(4096, 1)
	b.Set(65535, 1)

	d := Diff(a, b)
	assert.Equal(t, uint64(3), d.GetCardinality())
	assert.Equal(t, []uint32{0, 4096, 65535}, d.ToArray())
	assert.True(t, Diff(b, a).Equals(d))
}

func TestDiffFunc(t *testing.T) {
	a := NewFunc(func(i uint8) []int { return []int{int(i)} })
	b := NewFunc(func(i uint8) []int { return []int{int(i)} })
	b.Set(17, []int{0})

	eq := func(x, y []int) bool { return len(x) == len(y) && x[0] == y[0] }
	assert.Equal(t, []uint32{17}, a.DiffFunc(b, eq).ToArray())
}

func TestSelect(t *testing.T) {
	a := NewFunc(func(i uint8) int { return int(i) % 64 })

	bm := a.Select(func(_ uint8, v int) bool { return v == 0 })
	assert.Equal(t, []uint32{0, 64, 128, 192}, bm.ToArray())

	none := a.Select(func(uint8, int) bool { return false })
	assert.True(t, none.IsEmpty())
}

func TestSetIndices(t *testing.T) {
	a := NewU8[string]()
	a.SetIndices(roaring.BitmapOf(1, 2, 255, 256, 70000), "hit")

	assert.Equal(t, "hit", a.Get(1))
	assert.Equal(t, "hit", a.Get(2))
	assert.Equal(t, "hit", a.Get(255))
	assert.Empty(t, a.Get(0))
	assert.Equal(t, uint64(3), a.Select(func(_ uint8, v string) bool { return v == "hit" }).GetCardinality())

	a.SetIndices(nil, "ignored")
	a.SetIndices(roaring.New(), "ignored")
	assert.Empty(t, a.Get(3))
}
