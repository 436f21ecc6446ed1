package decoder

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

const (
	genesisHash       = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
	genesisTxHash     = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	genesisMerkleWire = "3ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa4b1e5e4a"
	zeroHashHex       = "0000000000000000000000000000000000000000000000000000000000000000"
)

func genesisBlockBytes(t *testing.T) []byte {
	t.Helper()
	return blockBytes(t, chaincfg.MainNetParams.GenesisBlock)
}

func txBytes(t *testing.T, tx *wire.MsgTx) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tx.Serialize(&buf))
	return buf.Bytes()
}

func blockBytes(t *testing.T, block *wire.MsgBlock) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, block.Serialize(&buf))
	return buf.Bytes()
}

func framed(magic wire.BitcoinNet, payload []byte) []byte {
	out := make([]byte, FrameSize, FrameSize+len(payload))
	binary.LittleEndian.PutUint32(out[0:4], uint32(magic))
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(payload)))
	return append(out, payload...)
}

func p2pkhScript() []byte {
	script := []byte{0x76, 0xa9, 0x14}
	script = append(script, bytes.Repeat([]byte{0xab}, 20)...)
	return append(script, 0x88, 0xac)
}

func spendingTx() *wire.MsgTx {
	prev := chainhash.Hash{0x01, 0x02, 0x03}
	tx := wire.NewMsgTx(1)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prev, 1), []byte{0x01, 0x02, 0x03}, nil))
	tx.AddTxOut(wire.NewTxOut(100_000_000, p2pkhScript()))
	tx.AddTxOut(wire.NewTxOut(1, []byte{0x6a}))
	tx.LockTime = 7
	return tx
}

func twoTxBlock() *wire.MsgBlock {
	genesis := chaincfg.MainNetParams.GenesisBlock
	block := wire.NewMsgBlock(&wire.BlockHeader{
		Version:    2,
		PrevBlock:  genesis.BlockHash(),
		MerkleRoot: chainhash.Hash{0x09},
		Timestamp:  genesis.Header.Timestamp.Add(10 * time.Minute),
		Bits:       0x1d00ffff,
		Nonce:      42,
	})
	_ = block.AddTransaction(genesis.Transactions[0].Copy())
	_ = block.AddTransaction(spendingTx())
	return block
}

func newReader(b []byte) *Reader {
	return NewReader(bytes.NewReader(b), int64(len(b)))
}

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
