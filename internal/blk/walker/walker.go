// Package walker scans a blk data file block by block and materializes the selected one.
package walker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/decoder"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/model"
	"go.uber.org/zap"
)

const defaultProgressInterval uint64 = 1000

// Walker drives the block decoder over a whole data file.
type Walker struct {
	decoder          BlockDecoder
	progress         Progress
	metrics          Metrics
	magic            wire.BitcoinNet
	progressInterval uint64
	logger           *zap.Logger
}

// NewWalker builds a Walker. A zero magic disables the network magic check.
func NewWalker(
	blockDecoder BlockDecoder,
	progress Progress,
	metrics Metrics,
	magic wire.BitcoinNet,
	logger *zap.Logger,
) (*Walker, error) {
	if blockDecoder == nil {
		return nil, errors.New("block decoder is required")
	}
	if progress == nil {
		return nil, errors.New("progress reporter is required")
	}
	if metrics == nil {
		return nil, errors.New("walker metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		decoder:          blockDecoder,
		progress:         progress,
		metrics:          metrics,
		magic:            magic,
		progressInterval: defaultProgressInterval,
		logger:           logger,
	}, nil
}

// Walk reads blocks from offset 0 until the selected block is materialized or the
// source is exhausted. It returns nil when nothing was selected or the selection
// lies past the last block.
func (w *Walker) Walk(ctx context.Context, src io.ReadSeeker, size int64, sel Selection) (block *model.Block, err error) {
	started := time.Now()
	var blocks uint64
	defer func() {
		w.metrics.ObserveWalk(err, blocks, started)
	}()

	r := decoder.NewReader(src, size)
	if err = r.Seek(0); err != nil {
		return nil, fmt.Errorf("rewind source: %w", err)
	}

	for r.Offset() < size {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		materialize := sel.matches(blocks)
		offset := r.Offset()
		decoded, frame, decodeErr := w.decoder.Block(r, materialize)
		if decodeErr != nil {
			err = fmt.Errorf("block %d at offset %d: %w", blocks, offset, decodeErr)
			return nil, err
		}
		w.checkMagic(frame, blocks)

		blocks++
		w.metrics.ObserveBlock(materialize)
		if blocks%w.progressInterval == 0 || r.Offset() == size {
			w.progress.Report(blocks, r.Offset(), size)
		}

		if materialize {
			w.logger.Debug("block materialized",
				zap.Uint64("ordinal", blocks-1),
				zap.Int64("offset", offset),
				zap.Int("txs", len(decoded.Txs)),
			)
			return decoded, nil
		}
	}

	if index, ok := sel.Get(); ok {
		w.logger.Warn("selected block not found", zap.Uint64("index", index), zap.Uint64("blocks", blocks))
	}
	return nil, nil
}

func (w *Walker) checkMagic(frame decoder.Frame, ordinal uint64) {
	if w.magic == 0 || frame.Magic == w.magic {
		return
	}
	w.logger.Warn("unexpected block magic",
		zap.Uint64("ordinal", ordinal),
		zap.Int64("offset", frame.Offset),
		zap.Stringer("magic", frame.Magic),
		zap.Stringer("want", w.magic),
	)
}
