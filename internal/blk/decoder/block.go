package decoder

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/model"
)

// ReadFrame reads the magic and size in front of a block.
func ReadFrame(r *Reader) (Frame, error) {
	offset := r.Offset()
	magic, err := r.Uint32()
	if err != nil {
		return Frame{}, fmt.Errorf("read magic: %w", err)
	}
	size, err := r.Uint32()
	if err != nil {
		return Frame{}, fmt.Errorf("read size: %w", err)
	}
	return Frame{
		Magic:  wire.BitcoinNet(magic),
		Size:   size,
		Offset: offset,
		End:    r.Offset() + int64(size),
	}, nil
}

// Block reads the next block frame. With materialize unset it jumps to the end of the
// block and returns a nil record.
func (d *Decoder) Block(r *Reader, materialize bool) (*model.Block, Frame, error) {
	frame, err := ReadFrame(r)
	if err != nil {
		return nil, Frame{}, err
	}
	if !materialize {
		if err := r.Seek(frame.End); err != nil {
			return nil, frame, fmt.Errorf("skip block: %w", err)
		}
		return nil, frame, nil
	}
	if frame.End > r.Size() {
		return nil, frame, fmt.Errorf("block of %d bytes at offset %d: %w", frame.Size, frame.Offset, ErrStreamTruncated)
	}

	block, err := d.decodeBlock(r, frame)
	if err != nil {
		return nil, frame, err
	}
	return block, frame, nil
}

func (d *Decoder) decodeBlock(r *Reader, frame Frame) (*model.Block, error) {
	header, err := r.Bytes(HeaderSize)
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	txCount, err := r.VarInt()
	if err != nil {
		return nil, fmt.Errorf("read tx count: %w", err)
	}

	block := &model.Block{
		Hash:       DoubleHash(header).String(),
		Version:    binary.LittleEndian.Uint32(header[0:4]),
		PrevBlock:  hex.EncodeToString(header[4 : 4+chainhash.HashSize]),
		MerkleRoot: hex.EncodeToString(header[36 : 36+chainhash.HashSize]),
		Time:       binary.LittleEndian.Uint32(header[68:72]),
		Bits:       binary.LittleEndian.Uint32(header[72:76]),
		Nonce:      binary.LittleEndian.Uint32(header[76:80]),
		TXCount:    txCount,
		Size:       frame.Size,
		Txs:        make([]model.Transaction, 0, capacity(txCount, r.Remaining())),
	}

	for i := uint64(0); i < txCount; i++ {
		tx, err := d.Transaction(r)
		if err != nil {
			return nil, fmt.Errorf("read tx %d: %w", i, err)
		}
		block.Txs = append(block.Txs, tx)
	}
	return block, nil
}
