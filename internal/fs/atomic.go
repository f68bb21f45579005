package fs

import (
	"bufio"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
)

const writeBufferSize = 256 * 1024

// TempSuffix marks in-progress files written by WriteFileAtomic. Directory
// listings should skip names containing it.
const TempSuffix = ".tmp-"

// WriteFileAtomic writes name by calling write with a buffered writer on a
// temporary file in the same directory, syncing it and renaming it over
// name. On any error the temporary file is removed and name is untouched.
func WriteFileAtomic(fsys FileSystem, name string, perm os.FileMode, write func(io.Writer) error) error {
	if fsys == nil {
		fsys = Default
	}
	dir := filepath.Dir(name)

	tmpName := name + TempSuffix + strconv.FormatUint(rand.Uint64(), 36)
	tmp, err := fsys.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = fsys.Remove(tmpName)
		}
	}()

	buf := bufio.NewWriterSize(tmp, writeBufferSize)
	if err := write(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := fsys.Rename(tmpName, name); err != nil {
		return err
	}
	tmpName = ""

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := fsys.OpenFile(dir, os.O_RDONLY, 0); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}
