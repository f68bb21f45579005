package idxarray

import (
	"reflect"
	"sync"

	"github.com/hupe1980/idxarray/internal/unchecked"
)

const (
	// U8Capacity is the number of slots addressed by an 8-bit index.
	U8Capacity = 1 << 8
	// U16Capacity is the number of slots addressed by a 16-bit index.
	U16Capacity = 1 << 16
)

// Index is the closed set of index types. Every value of an Index type
// addresses exactly one slot of an Array keyed by it.
type Index interface {
	~uint8 | ~uint16
}

// Capacity returns the number of slots of an Array keyed by K,
// i.e. the number of distinct values of K.
func Capacity[K Index]() int {
	return int(^K(0)) + 1
}

// Array is a fixed-capacity container with one slot for every value of K.
//
// Storage always holds exactly Capacity[K]() elements, so indexing with any
// K is in range by construction and the accessors skip bounds checks. There
// is no operation that resizes the storage.
//
// The zero value is ready to use: every slot reads as T's zero value and
// storage is allocated on first mutable access. Get, View, the iterators
// All and Values, and the comparison, hashing, diff and encoding functions
// only read, never write to the Array, and may run concurrently. Set, Ptr,
// Slice, Pointers and the other mutators need exclusive access; on a zero
// value they allocate the storage.
//
// Copying an Array value copies a reference to its storage. Use Clone for
// an independent copy.
type Array[K Index, T any] struct {
	slots []T // nil or exactly Capacity[K]() elements
}

// U8Array is an Array with 256 slots keyed by uint8.
type U8Array[T any] = Array[uint8, T]

// U16Array is an Array with 65536 slots keyed by uint16.
type U16Array[T any] = Array[uint16, T]

// New returns an Array with every slot set to T's zero value.
func New[K Index, T any]() *Array[K, T] {
	return &Array[K, T]{slots: alloc[K, T]()}
}

// NewWithDefault returns an Array with every slot set to a copy of v.
//
// The copy is a Go assignment: if T holds pointers, maps or slices, all
// slots share what they reference. Use NewFunc for independent values.
func NewWithDefault[K Index, T any](v T) *Array[K, T] {
	a := New[K, T]()
	for i := range a.slots {
		a.slots[i] = v
	}
	return a
}

// NewFunc returns an Array whose slot i holds fn(i). fn is called once per
// slot in ascending index order.
func NewFunc[K Index, T any](fn func(K) T) *Array[K, T] {
	a := New[K, T]()
	for i := range a.slots {
		a.slots[i] = fn(K(i))
	}
	return a
}

// FromSlice returns an Array holding a copy of s. The length of s must be
// exactly Capacity[K]().
func FromSlice[K Index, T any](s []T) (*Array[K, T], error) {
	if n := Capacity[K](); len(s) != n {
		return nil, &ErrLengthMismatch{Expected: n, Actual: len(s)}
	}
	a := New[K, T]()
	copy(a.slots, s)
	return a, nil
}

// NewU8 returns a 256-slot Array with every slot set to T's zero value.
func NewU8[T any]() *U8Array[T] { return New[uint8, T]() }

// NewU8WithDefault returns a 256-slot Array with every slot set to v.
func NewU8WithDefault[T any](v T) *U8Array[T] { return NewWithDefault[uint8](v) }

// NewU16 returns a 65536-slot Array with every slot set to T's zero value.
func NewU16[T any]() *U16Array[T] { return New[uint16, T]() }

// NewU16WithDefault returns a 65536-slot Array with every slot set to v.
func NewU16WithDefault[T any](v T) *U16Array[T] { return NewWithDefault[uint16](v) }

// Width returns the index bit width for K, 8 or 16.
func Width[K Index]() int {
	if Capacity[K]() == U8Capacity {
		return 8
	}
	return 16
}

// alloc is the only place storage is created.
func alloc[K Index, T any]() []T {
	return make([]T, Capacity[K]())
}

// Width returns the index bit width of a, 8 or 16.
func (a *Array[K, T]) Width() int {
	return Width[K]()
}

// Len returns the number of slots, which is always Capacity[K]().
func (a *Array[K, T]) Len() int {
	return Capacity[K]()
}

// Get returns the value at slot i.
func (a *Array[K, T]) Get(i K) T {
	if a.slots == nil {
		var zero T
		return zero
	}
	return *a.at(i)
}

// Ptr returns a pointer to slot i. The pointer stays valid for the
// lifetime of the Array; writes through it update the slot. Ptr counts as
// a write: it allocates the storage of a zero-value Array.
func (a *Array[K, T]) Ptr(i K) *T {
	return a.at(i)
}

// Set stores v at slot i.
func (a *Array[K, T]) Set(i K, v T) {
	*a.at(i) = v
}

// Swap exchanges the values at slots i and j.
func (a *Array[K, T]) Swap(i, j K) {
	pi, pj := a.at(i), a.at(j)
	*pi, *pj = *pj, *pi
}

// Fill sets every slot to v.
func (a *Array[K, T]) Fill(v T) {
	s := a.storage()
	for i := range s {
		s[i] = v
	}
}

// Reset sets every slot to T's zero value.
func (a *Array[K, T]) Reset() {
	if a.slots != nil {
		clear(a.slots)
	}
}

// View returns the slots for reading. The result must not be modified.
// On a zero-value Array it is a zero-filled slice shared by all zero-value
// Arrays of the same type, so View never writes to a.
func (a *Array[K, T]) View() []T {
	s := a.view()
	return s[:len(s):len(s)]
}

// Slice returns a mutable view of the storage. Writes through the view
// update the Array. The view has capacity equal to its length, so
// appending to it never touches the Array's storage.
func (a *Array[K, T]) Slice() []T {
	s := a.storage()
	return s[:len(s):len(s)]
}

// CopyTo copies the slots into dst and returns the number of elements
// copied, min(len(dst), a.Len()).
func (a *Array[K, T]) CopyTo(dst []T) int {
	return copy(dst, a.view())
}

// CopyFrom copies src into the leading slots and returns the number of
// elements copied, min(len(src), a.Len()). Remaining slots are unchanged.
func (a *Array[K, T]) CopyFrom(src []T) int {
	return copy(a.storage(), src)
}

// Elements returns a newly allocated slice holding a copy of every slot.
func (a *Array[K, T]) Elements() []T {
	out := make([]T, a.Len())
	a.CopyTo(out)
	return out
}

// Clone returns an independent copy of a. Elements are copied by
// assignment.
func (a *Array[K, T]) Clone() *Array[K, T] {
	c := New[K, T]()
	copy(c.slots, a.view())
	return c
}

// CloneFunc returns a copy of a where slot i holds fn(a.Get(i)), for deep
// copies of element types that reference shared memory.
func (a *Array[K, T]) CloneFunc(fn func(T) T) *Array[K, T] {
	c := New[K, T]()
	src := a.view()
	for i := range c.slots {
		c.slots[i] = fn(src[i])
	}
	return c
}

// at returns the address of slot i, allocating storage on first use.
// Storage length equals the number of K values, so i is always in range.
func (a *Array[K, T]) at(i K) *T {
	return unchecked.At(a.storage(), uint(i))
}

func (a *Array[K, T]) storage() []T {
	if a.slots == nil {
		a.slots = alloc[K, T]()
	}
	return a.slots
}

// view returns the storage for reading without mutating a.
func (a *Array[K, T]) view() []T {
	if a.slots == nil {
		return zeroSlots[K, T]()
	}
	return a.slots
}

// zeroViews holds one zero-filled storage slice per Array type, keyed by
// that type. Nothing writes to them.
var zeroViews sync.Map

func zeroSlots[K Index, T any]() []T {
	key := reflect.TypeFor[Array[K, T]]()
	if v, ok := zeroViews.Load(key); ok {
		return v.([]T)
	}
	v, _ := zeroViews.LoadOrStore(key, alloc[K, T]())
	return v.([]T)
}
