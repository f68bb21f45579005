package idxarray

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

// MarshalJSON encodes every slot, in slot order, as a JSON array. It has a
// value receiver so Arrays held by value in other types encode too.
func (a Array[K, T]) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(a.view())
}

// UnmarshalJSON decodes a JSON array holding exactly one element per slot.
// On error the Array is left unchanged.
func (a *Array[K, T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := gojson.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("idxarray: decode %d-bit array: %w", Width[K](), err)
	}
	if n := Capacity[K](); len(elems) != n {
		return &ErrLengthMismatch{Expected: n, Actual: len(elems)}
	}
	copy(a.storage(), elems)
	return nil
}
