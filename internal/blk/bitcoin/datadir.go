package bitcoin

import (
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
)

// DefaultBlockFile is the name of the first block data file of early clients.
const DefaultBlockFile = "blk0001.dat"

// DefaultDataDir returns the platform data directory of the reference client.
func DefaultDataDir() string {
	return btcutil.AppDataDir("bitcoin", false)
}

// BlockFilePath joins a data directory and a block file name. An absolute name wins.
func BlockFilePath(dataDir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dataDir, name)
}
