//go:build unix

package mmap

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

var madvise = [...]int{
	AccessDefault:    unix.MADV_NORMAL,
	AccessSequential: unix.MADV_SEQUENTIAL,
	AccessRandom:     unix.MADV_RANDOM,
	AccessWillNeed:   unix.MADV_WILLNEED,
}

func osMap(f *os.File, size int) ([]byte, func([]byte) error, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return data, unix.Munmap, nil
}

func osAdvise(data []byte, hint AccessPattern) error {
	if len(data) == 0 || hint <= AccessDefault || int(hint) >= len(madvise) {
		return nil
	}
	// EINVAL means the kernel rejected the hint for this mapping.
	if err := unix.Madvise(data, madvise[hint]); err != nil && !errors.Is(err, unix.EINVAL) {
		return err
	}
	return nil
}
