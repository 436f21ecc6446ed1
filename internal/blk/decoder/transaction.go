package decoder

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/pkg/safe"
)

// Transaction decodes the transaction starting at the reader's offset and leaves
// the cursor right after its last byte.
func (d *Decoder) Transaction(r *Reader) (model.Transaction, error) {
	start := r.Offset()

	version, err := r.Uint32()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("read version: %w", err)
	}

	inputCount, err := r.VarInt()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("read input count: %w", err)
	}
	inputs := make([]model.Input, 0, capacity(inputCount, r.Remaining()))
	for i := uint64(0); i < inputCount; i++ {
		in, err := readInput(r)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("read input %d: %w", i, err)
		}
		inputs = append(inputs, in)
	}

	outputCount, err := r.VarInt()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("read output count: %w", err)
	}
	outputs := make([]model.Output, 0, capacity(outputCount, r.Remaining()))
	for i := uint64(0); i < outputCount; i++ {
		out, err := d.readOutput(r)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("read output %d: %w", i, err)
		}
		outputs = append(outputs, out)
	}

	lockTime, err := r.Uint32()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("read lock time: %w", err)
	}

	hash, size, err := hashSpan(r, start)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Hash:        hash.String(),
		Version:     version,
		InputCount:  inputCount,
		OutputCount: outputCount,
		LockTime:    lockTime,
		Size:        size,
		Inputs:      inputs,
		Outputs:     outputs,
		Offset:      start,
	}, nil
}

// readInput keeps the payload minus its first byte for spending inputs and whole for
// coinbase inputs, matching the established dump output.
func readInput(r *Reader) (model.Input, error) {
	prevHash, err := r.Bytes(chainhash.HashSize)
	if err != nil {
		return model.Input{}, fmt.Errorf("read prev hash: %w", err)
	}
	index, err := r.Uint32()
	if err != nil {
		return model.Input{}, fmt.Errorf("read prev index: %w", err)
	}
	payload, err := r.VarBytes()
	if err != nil {
		return model.Input{}, fmt.Errorf("read script: %w", err)
	}
	sequence, err := r.Uint32()
	if err != nil {
		return model.Input{}, fmt.Errorf("read sequence: %w", err)
	}

	coinbase := index == model.CoinbaseIndex
	skip := 1
	if coinbase {
		skip = 0
	}
	skip = min(skip, len(payload))

	return model.Input{
		PrevOut: model.PrevOut{
			Hash:  hex.EncodeToString(prevHash),
			Index: index,
		},
		IsCoinbase: coinbase,
		ScriptHex:  hex.EncodeToString(payload[skip:]),
		Sequence:   sequence,
	}, nil
}

func (d *Decoder) readOutput(r *Reader) (model.Output, error) {
	value, err := r.Uint64()
	if err != nil {
		return model.Output{}, fmt.Errorf("read value: %w", err)
	}
	script, err := r.VarBytes()
	if err != nil {
		return model.Output{}, fmt.Errorf("read script: %w", err)
	}
	return model.Output{
		Value:        FormatValue(value),
		ScriptPubKey: d.script.Disassemble(script),
		Satoshis:     value,
	}, nil
}

// FormatValue renders a satoshi amount as coins with eight decimals.
func FormatValue(satoshis uint64) string {
	return strconv.FormatFloat(float64(satoshis)/btcutil.SatoshiPerBitcoin, 'f', 8, 64)
}

// hashSpan re-reads the bytes from start to the current offset and double hashes them.
// The cursor ends where it was.
func hashSpan(r *Reader, start int64) (chainhash.Hash, uint64, error) {
	end := r.Offset()
	size, err := safe.Uint64(end - start)
	if err != nil {
		return chainhash.Hash{}, 0, fmt.Errorf("span size: %w", err)
	}
	n, err := safe.Int(size)
	if err != nil {
		return chainhash.Hash{}, 0, fmt.Errorf("span size: %w", err)
	}
	if err := r.Seek(start); err != nil {
		return chainhash.Hash{}, 0, fmt.Errorf("rewind to %d: %w", start, err)
	}
	raw, err := r.Bytes(n)
	if err != nil {
		return chainhash.Hash{}, 0, fmt.Errorf("reread span: %w", err)
	}
	return DoubleHash(raw), size, nil
}
