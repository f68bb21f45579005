package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies snapshot files (ASCII: "IDXA").
	MagicNumber = 0x41584449
	// Version is the current format version.
	Version = 1

	// MaxPayloadSize bounds the payload size accepted when decoding.
	MaxPayloadSize = 1 << 30
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidWidth       = errors.New("invalid index width")
	ErrUnknownCodec       = errors.New("unknown codec")
	ErrUnknownCompression = errors.New("unknown compression")
	ErrPayloadTooLarge    = errors.New("payload too large")
)

// Header is the 32-byte header at the start of every snapshot.
type Header struct {
	Magic       uint32      // 0x41584449 ("IDXA")
	Version     uint16      // Format version
	Width       uint8       // Index bit width: 8 or 16
	Compression Compression // Payload compression
	CodecLen    uint8       // Length of the codec name following the header
	Reserved    [3]byte
	RawSize     uint64 // Payload size before compression
	StoredSize  uint64 // Payload size as stored
	Checksum    uint32 // CRC32C of the stored payload
}

// HeaderSize is the encoded size of Header.
var HeaderSize = binary.Size(Header{})

// Slots returns the number of array slots the snapshot describes.
func (h *Header) Slots() int {
	return 1 << h.Width
}

func (h *Header) validate() error {
	if h.Magic != MagicNumber {
		return fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, h.Magic)
	}
	if h.Version != Version {
		return fmt.Errorf("%w: got %d", ErrInvalidVersion, h.Version)
	}
	if h.Width != 8 && h.Width != 16 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, h.Width)
	}
	if !h.Compression.valid() {
		return fmt.Errorf("%w: got %d", ErrUnknownCompression, h.Compression)
	}
	if h.StoredSize > MaxPayloadSize || h.RawSize > MaxPayloadSize {
		return fmt.Errorf("%w: raw=%d stored=%d", ErrPayloadTooLarge, h.RawSize, h.StoredSize)
	}
	return nil
}

// WidthMismatchError is returned when a snapshot is decoded into an array
// of a different index width.
type WidthMismatchError struct {
	Expected int
	Actual   int
}

func (e *WidthMismatchError) Error() string {
	return fmt.Sprintf("width mismatch: expected %d-bit snapshot, got %d-bit", e.Expected, e.Actual)
}

// ChecksumMismatchError is returned when checksum verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// IsChecksumMismatch returns true if err is or wraps a checksum mismatch
// error.
func IsChecksumMismatch(err error) bool {
	var cm *ChecksumMismatchError
	return errors.As(err, &cm)
}
