// Package conv provides checked integer conversions for values read from
// untrusted input such as snapshot headers.
//
// Conversions that are safe by construction (slot indices, loop counters
// bounded by a capacity) use direct casts instead.
package conv
