// Package service wires the blk decoder to files and JSON output.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/walker"
	"go.uber.org/zap"
)

// BlockDumpService renders one block of a data file as JSON.
type BlockDumpService struct {
	walker BlockWalker
	indent string
	logger *zap.Logger
}

// NewBlockDumpService builds a BlockDumpService. An empty indent writes compact JSON.
func NewBlockDumpService(blockWalker BlockWalker, indent string, logger *zap.Logger) (*BlockDumpService, error) {
	if blockWalker == nil {
		return nil, errors.New("block walker is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BlockDumpService{
		walker: blockWalker,
		indent: indent,
		logger: logger,
	}, nil
}

// DumpFile opens the data file at path and dumps the selected block to out.
func (s *BlockDumpService) DumpFile(ctx context.Context, path string, sel walker.Selection, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open block file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("close block file failed", zap.String("path", path), zap.Error(cerr))
		}
	}()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("measure block file: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind block file: %w", err)
	}

	s.logger.Debug("dumping block file", zap.String("path", path), zap.Int64("size", size))
	return s.Dump(ctx, f, size, sel, out)
}

// Dump walks src and writes the selected block, or null when it was not found.
// Nothing is written when decoding fails.
func (s *BlockDumpService) Dump(ctx context.Context, src io.ReadSeeker, size int64, sel walker.Selection, out io.Writer) error {
	block, err := s.walker.Walk(ctx, src, size, sel)
	if err != nil {
		return fmt.Errorf("walk blocks: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", s.indent)
	if err := enc.Encode(block); err != nil {
		return fmt.Errorf("encode block: %w", err)
	}
	return nil
}
