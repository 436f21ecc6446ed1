package walker

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/decoder"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockDecoder interface {
		Block(r *decoder.Reader, materialize bool) (*model.Block, decoder.Frame, error)
	}
	Progress interface {
		Report(blocks uint64, offset, size int64)
	}
	Metrics interface {
		ObserveBlock(materialized bool)
		ObserveWalk(err error, blocks uint64, started time.Time)
	}
)
