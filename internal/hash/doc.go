// Package hash provides the checksum used by the snapshot format.
//
// # CRC32-Castagnoli (CRC32C)
//
// Snapshot payloads are protected with CRC32C:
//
//   - Hardware acceleration on x86 (SSE4.2) and ARM (CRC extension)
//   - Detects all single-bit, double-bit and odd-bit errors, plus burst
//     errors up to 32 bits
//   - Same polynomial S3 uses for its CRC32C object checksums
//
// CRC32C detects accidental corruption only; it is not a MAC.
//
// # Usage
//
//	sum := hash.CRC32C(payload)
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	sum := h.Sum32()
package hash
