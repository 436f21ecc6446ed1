// Package bitcoin holds the Bitcoin specific settings of the dumper.
package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/model"
)

// ChainParams returns the chain parameters for a network name.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// Magic returns the block file magic of a network.
func Magic(network model.Network) (wire.BitcoinNet, error) {
	params, err := ChainParams(network)
	if err != nil {
		return 0, err
	}
	return params.Net, nil
}
