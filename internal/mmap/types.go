package mmap

import "errors"

// AccessPattern tells the kernel how a mapping will be read.
type AccessPattern int

const (
	AccessDefault AccessPattern = iota
	// AccessSequential suits snapshots decoded front to back.
	AccessSequential
	// AccessRandom suits point lookups by index.
	AccessRandom
	// AccessWillNeed asks the kernel to read ahead the whole mapping.
	AccessWillNeed
)

var (
	ErrClosed        = errors.New("mmap: file is closed")
	ErrInvalidSize   = errors.New("mmap: invalid file size")
	ErrInvalidOffset = errors.New("mmap: negative offset")
)
