// Package model defines the records decoded from a blk data file.
package model

// Block represents one materialized block of the data file.
// PrevBlock and MerkleRoot are hex of the bytes as stored, Hash is the display (reversed) form.
type Block struct {
	Hash       string        `json:"hash"`
	Version    uint32        `json:"ver"`
	PrevBlock  string        `json:"prev_block"`
	MerkleRoot string        `json:"mrkl_root"`
	Time       uint32        `json:"time"`
	Bits       uint32        `json:"bits"`
	Nonce      uint32        `json:"nonce"`
	TXCount    uint64        `json:"n_tx"`
	Size       uint32        `json:"size"`
	Txs        []Transaction `json:"tx"`
}
