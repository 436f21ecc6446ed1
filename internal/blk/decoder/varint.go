package decoder

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-blkdump/pkg/safe"
)

// VarInt decodes a compact size integer. Non-canonical encodings are accepted as is.
func (r *Reader) VarInt() (uint64, error) {
	marker, err := r.Uint8()
	if err != nil {
		return 0, err
	}
	switch marker {
	case 0xfd:
		v, err := r.Uint16()
		return uint64(v), err
	case 0xfe:
		v, err := r.Uint32()
		return uint64(v), err
	case 0xff:
		return r.Uint64()
	default:
		return uint64(marker), nil
	}
}

// VarBytes reads a VarInt length followed by that many bytes.
func (r *Reader) VarBytes() ([]byte, error) {
	length, err := r.VarInt()
	if err != nil {
		return nil, err
	}
	if length > uint64(r.Remaining()) {
		return nil, fmt.Errorf("var bytes length %d at offset %d: %w", length, r.offset, ErrStreamTruncated)
	}
	n, err := safe.Int(length)
	if err != nil {
		return nil, err
	}
	return r.Bytes(n)
}
