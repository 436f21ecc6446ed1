package walker

import "go.uber.org/zap"

type logProgress struct {
	logger *zap.Logger
}

// NewLogProgress reports scan progress through the logger.
func NewLogProgress(logger *zap.Logger) Progress {
	return &logProgress{logger: logger}
}

func (p *logProgress) Report(blocks uint64, offset, size int64) {
	p.logger.Info("blocks scanned",
		zap.Uint64("blocks", blocks),
		zap.Int64("offset", offset),
		zap.Int64("size", size),
	)
}
