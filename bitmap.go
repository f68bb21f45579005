package idxarray

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Diff returns the indices whose values differ between a and b.
func Diff[K Index, T comparable](a, b *Array[K, T]) *roaring.Bitmap {
	return a.DiffFunc(b, func(x, y T) bool { return x == y })
}

// DiffFunc returns the indices at which eq reports the values of a and b
// as different.
func (a *Array[K, T]) DiffFunc(b *Array[K, T], eq func(T, T) bool) *roaring.Bitmap {
	x, y := a.view(), b.view()
	bm := roaring.New()
	for i := range x {
		if !eq(x[i], y[i]) {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// Select returns the indices whose slots satisfy pred.
func (a *Array[K, T]) Select(pred func(K, T) bool) *roaring.Bitmap {
	bm := roaring.New()
	for i, v := range a.view() {
		if pred(K(i), v) {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// SetIndices stores v at every index in bm. Members of bm that are not
// values of K are ignored.
func (a *Array[K, T]) SetIndices(bm *roaring.Bitmap, v T) {
	if bm == nil || bm.IsEmpty() {
		return
	}
	s := a.storage()
	limit := uint32(len(s))
	it := bm.Iterator()
	for it.HasNext() {
		i := it.Next()
		if i >= limit {
			return
		}
		s[i] = v
	}
}
