// Package metrics exposes Prometheus collectors for the block dumper.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdump/internal/blk/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	walkerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_walker",
		Name:      "blocks_total",
		Help:      "Count of blocks read from data files by mode.",
	}, []string{"network", "mode"})

	walkerWalkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_walker",
		Name:      "walk_total",
		Help:      "Count of data file walks.",
	}, []string{"network", "status"})

	walkerWalkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_walker",
		Name:      "walk_duration_seconds",
		Help:      "Duration of a data file walk.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 16),
	}, []string{"network", "status"})

	walkerWalkBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blk_walker",
		Name:      "walk_blocks",
		Help:      "Number of blocks read per walk.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 12), // 1..4M
	}, []string{"network", "status"})
)

// Walker records chain walker activity.
type Walker struct {
	network model.Network
}

func NewWalker(network model.Network) *Walker {
	if network == "" {
		network = "unknown"
	}
	return &Walker{network: network}
}

func (m Walker) ObserveBlock(materialized bool) {
	mode := "skipped"
	if materialized {
		mode = "materialized"
	}
	walkerBlocksTotal.WithLabelValues(string(m.network), mode).Inc()
}

func (m Walker) ObserveWalk(err error, blocks uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	walkerWalkTotal.WithLabelValues(string(m.network), status).Inc()
	walkerWalkDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	walkerWalkBlocks.WithLabelValues(string(m.network), status).Observe(float64(blocks))
}
