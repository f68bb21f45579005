// Package mmap provides read-only memory-mapped access to local snapshot
// files.
//
//	m, err := mmap.Open("ascii.idxa", mmap.AccessSequential)
//	if err != nil { ... }
//	defer m.Close()
//
//	data, err := m.Bytes() // valid until Close
//
// Unix uses mmap(2) and passes the access pattern to madvise(2). Windows
// uses CreateFileMapping/MapViewOfFile and ignores the hint.
//
// A File is safe for concurrent reads. Close is idempotent.
package mmap
