// Package snapshot provides the binary encoding of idxarray arrays.
//
// A snapshot is self-describing: a fixed 32-byte little-endian header
// records the index width, the compression and the name of the codec used
// for the element sequence, followed by the codec name and the payload.
//
//	┌──────────────┬────────────┬─────────────────────────────────────┐
//	│ Header (32B) │ codec name │ payload (compressed codec encoding) │
//	└──────────────┴────────────┴─────────────────────────────────────┘
//
// The payload is protected by a CRC32C checksum. Decoding selects the codec
// by the name stored in the header, so snapshots stay readable when the
// default codec changes.
//
// # Usage
//
//	data, err := snapshot.Marshal(table, snapshot.WithCompression(snapshot.CompressionLZ4))
//	table, err := snapshot.Unmarshal[uint8, int](data)
//
//	err := snapshot.SaveFile("ascii.idxa", table)
//	table, err := snapshot.LoadFile[uint8, int]("ascii.idxa")
package snapshot
