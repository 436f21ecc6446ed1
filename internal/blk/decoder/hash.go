package decoder

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// DoubleHash returns sha256(sha256(b)). Its String method yields the byte-reversed display hex.
func DoubleHash(b []byte) chainhash.Hash {
	return chainhash.DoubleHashH(b)
}
