package idxarray

import "iter"

// All returns an iterator over index/value pairs in slot order. The
// iterator is restartable; each call to it walks all slots again.
func (a *Array[K, T]) All() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		for i, v := range a.view() {
			if !yield(K(i), v) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in slot order.
func (a *Array[K, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.view() {
			if !yield(v) {
				return
			}
		}
	}
}

// Pointers returns an iterator over index/pointer pairs in slot order.
// Writes through the pointers update the slots. The caller must hold
// exclusive access for the duration of the iteration.
func (a *Array[K, T]) Pointers() iter.Seq2[K, *T] {
	return func(yield func(K, *T) bool) {
		s := a.storage()
		for i := range s {
			if !yield(K(i), &s[i]) {
				return
			}
		}
	}
}

// Drain returns an iterator that hands over every value in slot order.
// Each slot is reset to the zero value as soon as its value is yielded,
// so the Array no longer references it. Stopping early leaves the
// remaining slots untouched.
func (a *Array[K, T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		if a.slots == nil {
			for range a.Len() {
				if !yield(zero) {
					return
				}
			}
			return
		}
		for i := range a.slots {
			v := a.slots[i]
			a.slots[i] = zero
			if !yield(v) {
				return
			}
		}
	}
}
