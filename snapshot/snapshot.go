package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/idxarray"
	"github.com/hupe1980/idxarray/codec"
	"github.com/hupe1980/idxarray/internal/conv"
	"github.com/hupe1980/idxarray/internal/hash"
)

// payloadChunk caps the buffer reserved before any payload byte is read.
const payloadChunk = 1 << 20

// Info describes a snapshot without decoding its payload.
type Info struct {
	Header
	Codec string
}

// Marshal encodes a into a snapshot.
func Marshal[K idxarray.Index, T any](a *idxarray.Array[K, T], opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	if !o.compression.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, o.compression)
	}

	name := o.codec.Name()
	codecLen, err := conv.IntToUint8(len(name))
	if err != nil {
		return nil, fmt.Errorf("codec name %q: %w", name, err)
	}

	raw, err := o.codec.Marshal(a.View())
	if err != nil {
		return nil, fmt.Errorf("encode elements with %s: %w", name, err)
	}
	if len(raw) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(raw))
	}

	stored, applied, err := compress(raw, o.compression, o.zstdLevel)
	if err != nil {
		return nil, err
	}

	h := Header{
		Magic:       MagicNumber,
		Version:     Version,
		Width:       uint8(a.Width()),
		Compression: applied,
		CodecLen:    codecLen,
		RawSize:     uint64(len(raw)),
		StoredSize:  uint64(len(stored)),
		Checksum:    hash.CRC32C(stored),
	}

	buf := make([]byte, 0, HeaderSize+len(name)+len(stored))
	buf, err = binary.Append(buf, binary.LittleEndian, &h)
	if err != nil {
		return nil, fmt.Errorf("encode header: %w", err)
	}
	buf = append(buf, name...)
	buf = append(buf, stored...)
	return buf, nil
}

// Write encodes a as a snapshot to w.
func Write[K idxarray.Index, T any](w io.Writer, a *idxarray.Array[K, T], opts ...Option) error {
	data, err := Marshal(a, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Unmarshal decodes a snapshot produced by Marshal.
func Unmarshal[K idxarray.Index, T any](data []byte, opts ...Option) (*idxarray.Array[K, T], error) {
	return Read[K, T](bytes.NewReader(data), opts...)
}

// Read decodes one snapshot from r. It consumes exactly the bytes of the
// snapshot.
func Read[K idxarray.Index, T any](r io.Reader, opts ...Option) (*idxarray.Array[K, T], error) {
	o := applyOptions(opts)

	info, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if want := idxarray.Width[K](); int(info.Width) != want {
		return nil, &WidthMismatchError{Expected: want, Actual: int(info.Width)}
	}

	c, err := o.codecFor(info.Codec)
	if err != nil {
		return nil, err
	}

	storedSize, err := conv.Uint64ToInt(info.StoredSize)
	if err != nil {
		return nil, err
	}
	rawSize, err := conv.Uint64ToInt(info.RawSize)
	if err != nil {
		return nil, err
	}

	stored, err := readPayload(r, storedSize)
	if err != nil {
		return nil, err
	}
	if sum := hash.CRC32C(stored); sum != info.Checksum {
		return nil, &ChecksumMismatchError{Expected: info.Checksum, Actual: sum}
	}

	raw, err := decompress(stored, info.Compression, rawSize)
	if err != nil {
		return nil, err
	}

	elems := make([]T, idxarray.Capacity[K]())
	if err := c.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("decode elements with %s: %w", c.Name(), err)
	}
	return idxarray.FromSlice[K](elems)
}

// readPayload reads exactly n bytes from r. The buffer grows with the bytes
// actually read, so a header claiming a large payload in front of a short
// stream costs no more than the stream itself.
func readPayload(r io.Reader, n int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(min(n, payloadChunk))
	read, err := io.CopyN(&buf, r, int64(n))
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("read payload: %d of %d bytes: %w", read, n, err)
	}
	return buf.Bytes(), nil
}

// ReadHeader reads and validates the header and codec name from r,
// leaving r positioned at the start of the payload.
func ReadHeader(r io.Reader) (*Info, error) {
	var info Info
	if err := binary.Read(r, binary.LittleEndian, &info.Header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := info.validate(); err != nil {
		return nil, err
	}

	name := make([]byte, info.CodecLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, fmt.Errorf("read codec name: %w", err)
	}
	info.Codec = string(name)
	return &info, nil
}

func (o *options) codecFor(name string) (codec.Codec, error) {
	if o.codec != nil && o.codec.Name() == name {
		return o.codec, nil
	}
	if c, ok := codec.ByName(name); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}
