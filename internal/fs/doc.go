// Package fs provides the filesystem abstraction used for local snapshot
// files, with a fault-injecting implementation for tests.
//
//   - [File]: an open file with read/write/sync capabilities
//   - [FileSystem]: open, remove, rename, stat and directory operations
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: wraps a FileSystem and injects write, sync or close errors
//
// [WriteFileAtomic] writes through a temporary file in the target directory
// and renames it into place, so readers observe either the old or the new
// content and never a partial file.
//
//	err := fs.WriteFileAtomic(fs.Default, path, 0o644, func(w io.Writer) error {
//		_, err := w.Write(data)
//		return err
//	})
//
// Tests inject a [FaultyFS] to check that failed writes leave the previous
// file intact:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp-", fs.Fault{FailAfterBytes: 16})
package fs
