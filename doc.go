// Package idxarray provides total-domain arrays: fixed-capacity containers
// with one slot for every value of their index type.
//
// An Array[K, T] keyed by an 8-bit index has 256 slots, one keyed by a
// 16-bit index has 65536. Since every K value addresses a slot, indexed
// access cannot go out of range and skips runtime bounds checks. Storage is
// sized once, at exactly 2^N elements, and no operation resizes it.
//
// # Quick Start
//
//	table := idxarray.NewU8WithDefault(0)
//	for i := range 256 {
//	    table.Set(uint8(i), i)
//	}
//	fmt.Println(table.Get(42)) // 42
//
// Any unsigned type derived from uint8 or uint16 can key an array:
//
//	type Opcode uint8
//	handlers := idxarray.New[Opcode, func()]()
//	handlers.Set(0x90, nop)
//
// # Construction
//
//   - New / NewU8 / NewU16: every slot holds the zero value
//   - NewWithDefault / NewU8WithDefault / NewU16WithDefault: every slot holds v
//   - NewFunc: slot i holds fn(i)
//   - FromSlice: copy of a slice with exactly one element per slot
//
// The zero value of Array is also ready to use.
//
// # Capabilities
//
// Arrays compare element-wise (Equal, Compare, EqualFunc, CompareFunc),
// hash in slot order (Hash, Sum64, HashFunc), clone (Clone, CloneFunc),
// format all slots (String, Format), expose their storage as a slice that
// cannot change length (Slice), and iterate in slot order (All, Values,
// Pointers, Drain). Diff and Select report index sets as roaring bitmaps.
//
// # Persistence
//
// See the snapshot package for the binary encoding of arrays and the
// tablestore package for named tables held in a blob store.
package idxarray
