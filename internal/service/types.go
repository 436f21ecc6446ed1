package service

import (
	"context"
	"io"

	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/walker"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockWalker interface {
		Walk(ctx context.Context, src io.ReadSeeker, size int64, sel walker.Selection) (*model.Block, error)
	}
)
