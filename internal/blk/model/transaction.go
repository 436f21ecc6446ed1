package model

import "encoding/json"

// CoinbaseIndex is the previous output index that marks a coinbase input.
const CoinbaseIndex uint32 = 0xFFFFFFFF

// Transaction represents a decoded transaction with its computed identity.
type Transaction struct {
	Hash        string   `json:"hash"`
	Version     uint32   `json:"ver"`
	InputCount  uint64   `json:"vin_sz"`
	OutputCount uint64   `json:"vout_sz"`
	LockTime    uint32   `json:"lock_time"`
	Size        uint64   `json:"size"`
	Inputs      []Input  `json:"in"`
	Outputs     []Output `json:"out"`

	// Offset is where the transaction starts in the data file.
	Offset int64 `json:"-"`
}

// PrevOut references the output spent by an input.
type PrevOut struct {
	Hash  string `json:"hash"`
	Index uint32 `json:"n"`
}

// Input describes a transaction input. ScriptHex holds the coinbase payload for
// coinbase inputs and the signature script otherwise.
type Input struct {
	PrevOut    PrevOut
	IsCoinbase bool
	ScriptHex  string
	Sequence   uint32
}

// MarshalJSON renders the payload under "coinbase" or "scriptSig" depending on the input kind.
func (in Input) MarshalJSON() ([]byte, error) {
	key := "scriptSig"
	if in.IsCoinbase {
		key = "coinbase"
	}
	return json.Marshal(map[string]any{
		key:        in.ScriptHex,
		"prev_out": in.PrevOut,
	})
}

// Output represents an output with its value formatted in whole coins.
type Output struct {
	Value        string `json:"value"`
	ScriptPubKey string `json:"scriptPubKey"`

	Satoshis uint64 `json:"-"`
}
