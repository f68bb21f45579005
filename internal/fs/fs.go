package fs

import (
	"io"
	"os"
)

// File is the subset of *os.File needed to write a snapshot durably.
type File interface {
	io.WriteCloser
	Sync() error
}

// FileSystem is the set of operations WriteFileAtomic and LocalStore
// perform on the host file system.
type FileSystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
	MkdirAll(path string, perm os.FileMode) error
}

// LocalFS is the os-backed FileSystem.
type LocalFS struct{}

func (LocalFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		// Avoid returning a non-nil File holding a nil *os.File.
		return nil, err
	}
	return f, nil
}

func (LocalFS) Remove(name string) error                     { return os.Remove(name) }
func (LocalFS) Rename(oldpath, newpath string) error         { return os.Rename(oldpath, newpath) }
func (LocalFS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

// Default is the FileSystem used when none is given.
var Default FileSystem = LocalFS{}
