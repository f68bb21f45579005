package hash

import (
	"encoding/base64"
	"hash"
	"hash/crc32"
)

// castagnoli is built once; crc32 picks the hardware path when available.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, castagnoli)
}

// NewCRC32C returns a new CRC32-Castagnoli hash.Hash32.
func NewCRC32C() hash.Hash32 {
	return crc32.New(castagnoli)
}

// CRC32CBase64 returns the checksum of data as base64 of its big-endian
// bytes, the form S3 expects in ChecksumCRC32C.
func CRC32CBase64(data []byte) string {
	sum := CRC32C(data)
	b := []byte{byte(sum >> 24), byte(sum >> 16), byte(sum >> 8), byte(sum)}
	return base64.StdEncoding.EncodeToString(b)
}
