package decoder

import (
	"github.com/btcsuite/btcd/wire"
)

const (
	// HeaderSize is the length of a serialized block header.
	HeaderSize = wire.MaxBlockHeaderPayload

	// FrameSize is the length of the magic and size prefix in front of every block.
	FrameSize = 8
)

// Frame is the magic and declared size preceding a block in the data file.
type Frame struct {
	Magic  wire.BitcoinNet
	Size   uint32
	Offset int64
	End    int64
}

// Decoder turns blk file bytes into model records.
type Decoder struct {
	script *Disassembler
}

// New returns a Decoder that renders output scripts with the given disassembler.
func New(script *Disassembler) *Decoder {
	if script == nil {
		script = NewDisassembler(nil)
	}
	return &Decoder{script: script}
}

func capacity(n uint64, remaining int64) int {
	if remaining < 0 {
		return 0
	}
	return int(min(n, uint64(remaining)))
}
