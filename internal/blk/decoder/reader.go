// Package decoder walks the raw bytes of a blk data file and rebuilds block and transaction records.
package decoder

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrStreamTruncated is returned when a read or seek needs more bytes than the source holds.
var ErrStreamTruncated = errors.New("stream truncated")

// Reader reads little-endian fields sequentially from a seekable source of known length.
type Reader struct {
	src    io.ReadSeeker
	size   int64
	offset int64
	buf    [8]byte
}

// NewReader wraps src, which must be positioned at offset 0 and hold exactly size bytes.
func NewReader(src io.ReadSeeker, size int64) *Reader {
	return &Reader{src: src, size: size}
}

// Offset returns the current position.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Size returns the total length of the source.
func (r *Reader) Size() int64 {
	return r.size
}

// Remaining returns the number of bytes between the cursor and the end of the source.
func (r *Reader) Remaining() int64 {
	return r.size - r.offset
}

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(offset int64) error {
	if offset < 0 {
		return fmt.Errorf("seek to negative offset %d", offset)
	}
	if offset > r.size {
		return fmt.Errorf("seek to %d past end %d: %w", offset, r.size, ErrStreamTruncated)
	}
	if _, err := r.src.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek to %d: %w", offset, err)
	}
	r.offset = offset
	return nil
}

// Bytes reads the next n bytes into a new slice.
func (r *Reader) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := r.read(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Reader) Uint8() (uint8, error) {
	if err := r.read(r.buf[:1]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

func (r *Reader) Uint16() (uint16, error) {
	if err := r.read(r.buf[:2]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.buf[:2]), nil
}

func (r *Reader) Uint32() (uint32, error) {
	if err := r.read(r.buf[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.buf[:4]), nil
}

func (r *Reader) Uint64() (uint64, error) {
	if err := r.read(r.buf[:8]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.buf[:8]), nil
}

func (r *Reader) read(b []byte) error {
	if int64(len(b)) > r.Remaining() {
		return fmt.Errorf("read %d bytes at offset %d of %d: %w", len(b), r.offset, r.size, ErrStreamTruncated)
	}
	n, err := io.ReadFull(r.src, b)
	r.offset += int64(n)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return fmt.Errorf("read %d bytes at offset %d: %w", len(b), r.offset-int64(n), ErrStreamTruncated)
		}
		return fmt.Errorf("read %d bytes at offset %d: %w", len(b), r.offset-int64(n), err)
	}
	return nil
}
