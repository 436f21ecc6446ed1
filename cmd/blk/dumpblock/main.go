package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/decoder"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/walker"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/service"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	DumpBlock   uint64        `long:"dumpblock" env:"BLKDUMP_BLOCK" description:"dump block by index in json format" required:"true"`
	DataDir     string        `long:"datadir" env:"BLKDUMP_DATADIR" description:"data directory, defaults to the platform bitcoin directory"`
	File        string        `long:"file" env:"BLKDUMP_FILE" description:"block file name inside the data directory or absolute path" default:"blk0001.dat"`
	Network     model.Network `long:"network" env:"BLKDUMP_NETWORK" description:"network whose block magic is expected" default:"mainnet"`
	Compact     bool          `long:"compact" env:"BLKDUMP_COMPACT" description:"write json without indentation"`
	MetricsAddr string        `long:"metrics-addr" env:"BLKDUMP_METRICS_ADDR" description:"address for metrics server, disabled when empty"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		if errors.As(err, &ferr) && ferr.Type == flags.ErrRequired {
			parser.WriteHelp(os.Stderr)
		}
		os.Exit(1)
	}

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Fatal("block dump failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, out io.Writer, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	magic, err := bitcoin.Magic(cfg.Network)
	if err != nil {
		return fmt.Errorf("resolve network: %w", err)
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = bitcoin.DefaultDataDir()
	}
	path := bitcoin.BlockFilePath(dataDir, cfg.File)

	blockWalker, err := walker.NewWalker(
		decoder.New(decoder.NewDisassembler(decoder.DefaultOpcodes)),
		walker.NewLogProgress(logger.Named("progress")),
		metrics.NewWalker(cfg.Network),
		magic,
		logger.Named("walker"),
	)
	if err != nil {
		return fmt.Errorf("init walker: %w", err)
	}

	indent := " "
	if cfg.Compact {
		indent = ""
	}
	svc, err := service.NewBlockDumpService(blockWalker, indent, logger.Named("dump"))
	if err != nil {
		return err
	}

	logger.Info("dumping block", zap.String("path", path), zap.Uint64("index", cfg.DumpBlock))
	return svc.DumpFile(ctx, path, walker.Index(cfg.DumpBlock), out)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
