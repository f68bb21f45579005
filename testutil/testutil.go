package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/idxarray"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Fill returns an Array whose slots are produced by gen in index order.
func Fill[K idxarray.Index, T any](r *RNG, gen func(*RNG) T) *idxarray.Array[K, T] {
	return idxarray.NewFunc(func(K) T { return gen(r) })
}

// FillU8 returns a 256-slot table of random uint32 values.
func FillU8(r *RNG) *idxarray.U8Array[uint32] {
	return Fill[uint8](r, (*RNG).Uint32)
}

// FillU16 returns a 65536-slot table of random uint32 values.
func FillU16(r *RNG) *idxarray.U16Array[uint32] {
	return Fill[uint16](r, (*RNG).Uint32)
}

// Indices returns n distinct indices of K in ascending order. n is capped
// at the capacity of K.
func Indices[K idxarray.Index](r *RNG, n int) []K {
	capacity := idxarray.Capacity[K]()
	n = min(max(n, 0), capacity)

	r.mu.Lock()
	perm := r.rand.Perm(capacity)
	r.mu.Unlock()

	out := make([]K, n)
	for i := range out {
		out[i] = K(perm[i])
	}
	slices.Sort(out)
	return out
}

// Mutate sets the slots at n distinct random indices to gen's values and
// returns those indices in ascending order. gen must produce a value that
// differs from the current one for the indices to mark real changes.
func Mutate[K idxarray.Index, T any](r *RNG, a *idxarray.Array[K, T], n int, gen func(old T) T) []K {
	idx := Indices[K](r, n)
	for _, i := range idx {
		p := a.Ptr(i)
		*p = gen(*p)
	}
	return idx
}
