package unchecked

import "unsafe"

// At returns a pointer to s[i] without a bounds check.
//
// The caller guarantees i < len(s). Passing an out-of-range index is
// undefined behavior.
func At[T any](s []T, i uint) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), uintptr(i)*unsafe.Sizeof(zero))) //nolint:gosec // i < len(s) is guaranteed by the caller
}
