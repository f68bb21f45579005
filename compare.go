package idxarray

import (
	"cmp"
	"hash/maphash"
	"slices"
)

// Equal reports whether a and b hold equal values in every slot.
func Equal[K Index, T comparable](a, b *Array[K, T]) bool {
	return slices.Equal(a.view(), b.view())
}

// EqualFunc reports whether eq holds for the values in every slot of a
// and b.
func (a *Array[K, T]) EqualFunc(b *Array[K, T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.view(), b.view(), eq)
}

// Compare compares a and b lexicographically in slot order. The result is
// 0 if a == b, -1 if a < b, and +1 if a > b.
func Compare[K Index, T cmp.Ordered](a, b *Array[K, T]) int {
	return slices.Compare(a.view(), b.view())
}

// CompareFunc is like Compare but uses compare to compare elements.
func (a *Array[K, T]) CompareFunc(b *Array[K, T], compare func(T, T) int) int {
	return slices.CompareFunc(a.view(), b.view(), compare)
}

// Hash writes the hash of every element of a to h in slot order. Arrays
// that are Equal produce identical hashes for the same seed.
func Hash[K Index, T comparable](h *maphash.Hash, a *Array[K, T]) {
	for _, v := range a.view() {
		maphash.WriteComparable(h, v)
	}
}

// Sum64 returns the hash of a under seed.
func Sum64[K Index, T comparable](seed maphash.Seed, a *Array[K, T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	Hash(&h, a)
	return h.Sum64()
}

// HashFunc writes every element of a to h in slot order using fn. It is
// the hashing entry point for element types that are not comparable.
func (a *Array[K, T]) HashFunc(h *maphash.Hash, fn func(*maphash.Hash, T)) {
	for _, v := range a.view() {
		fn(h, v)
	}
}
