// Package unchecked provides slot access without runtime range checks.
//
// This is the only place in idxarray that bypasses Go's bounds checking.
// Callers must guarantee i < len(s); idxarray does so structurally by only
// passing storage whose length equals the value-domain size of the index
// type.
package unchecked
