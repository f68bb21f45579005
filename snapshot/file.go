package snapshot

import (
	"bufio"
	"io"
	"os"

	"github.com/hupe1980/idxarray"
	"github.com/hupe1980/idxarray/internal/fs"
)

const readBufferSize = 256 * 1024

// SaveFile atomically writes a snapshot of a to filename. Either the
// previous file or the complete new snapshot is visible, never a partial
// write.
func SaveFile[K idxarray.Index, T any](filename string, a *idxarray.Array[K, T], opts ...Option) error {
	return saveFile(fs.Default, filename, a, opts...)
}

func saveFile[K idxarray.Index, T any](fsys fs.FileSystem, filename string, a *idxarray.Array[K, T], opts ...Option) error {
	// Encode before touching the filesystem so encode errors leave no trace.
	data, err := Marshal(a, opts...)
	if err != nil {
		return err
	}
	return fs.WriteFileAtomic(fsys, filename, 0o644, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// LoadFile reads the snapshot stored in filename.
func LoadFile[K idxarray.Index, T any](filename string, opts ...Option) (*idxarray.Array[K, T], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read[K, T](bufio.NewReaderSize(f, readBufferSize), opts...)
}
