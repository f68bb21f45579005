package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
)

// ErrTrailingData is returned by Binary.Unmarshal when data is longer than
// the destination.
var ErrTrailingData = errors.New("codec: trailing data after binary value")

// Binary encodes fixed-size values (numbers, bools, arrays and structs of
// those) and slices of them in little-endian layout with no framing.
//
// Unmarshal writes into the existing destination: a slice must already
// have its final length, as it does for the element storage of an array.
// A pointer to a slice is also accepted.
type Binary struct{}

// Marshal encodes v in little-endian binary layout.
func (Binary) Marshal(v any) ([]byte, error) {
	b, err := binary.Append(nil, binary.LittleEndian, v)
	if err != nil {
		return nil, fmt.Errorf("codec: binary marshal %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal decodes data into v, which must be a pointer to a fixed-size
// value, a slice of fixed-size values, or a pointer to such a slice.
func (Binary) Unmarshal(data []byte, v any) error {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Slice {
		v = rv.Elem().Interface()
	}
	n, err := binary.Decode(data, binary.LittleEndian, v)
	if err != nil {
		return fmt.Errorf("codec: binary unmarshal %T: %w", v, err)
	}
	if n != len(data) {
		return fmt.Errorf("%w: %d of %d bytes consumed", ErrTrailingData, n, len(data))
	}
	return nil
}

// Name returns the unique name of the codec ("binary").
func (Binary) Name() string { return "binary" }
