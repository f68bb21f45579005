// Package testutil provides testing utilities for idxarray.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe RNG and helpers for generating
// random tables and index sets.
//
//	rng := testutil.NewRNG(4711)
//	table := testutil.FillU16(rng)           // random uint32 per slot
//	idx := testutil.Indices[uint8](rng, 10)  // 10 distinct sorted indices
package testutil
