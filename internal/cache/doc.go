// Package cache provides a byte-bounded LRU cache for immutable blob
// contents.
//
// LRU is keyed by blob name and bounded by the total size of the cached
// values. Values larger than the capacity are never cached. Returned
// slices are shared and must be treated as read-only.
package cache
