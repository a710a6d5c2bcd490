package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion counters and gauges, partitioned by domain.

var (
	// Ingestion loop
	CheckpointHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "namada_indexer",
		Subsystem: "ingest",
		Name:      "checkpoint_height",
		Help:      "Highest committed height per domain",
	}, []string{"domain"})

	ChainTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "namada_indexer",
		Subsystem: "ingest",
		Name:      "chain_tip_height",
		Help:      "Latest chain height observed by the domain loop",
	}, []string{"domain"})

	LoopState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "namada_indexer",
		Subsystem: "ingest",
		Name:      "loop_state",
		Help:      "1 for the current state of the domain loop, 0 otherwise",
	}, []string{"domain", "state"})

	Halted = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "namada_indexer",
		Subsystem: "ingest",
		Name:      "halted",
		Help:      "1 when the domain loop stopped on a non-recoverable error",
	}, []string{"domain"})

	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namada_indexer",
		Subsystem: "ingest",
		Name:      "errors_total",
		Help:      "Total loop errors by class (transient, permanent, conflict)",
	}, []string{"domain", "class"})

	SkippedHeightsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namada_indexer",
		Subsystem: "ingest",
		Name:      "skipped_heights_total",
		Help:      "Total heights committed as gaps because their payload was malformed",
	}, []string{"domain"})

	// Persistence
	CommitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namada_indexer",
		Subsystem: "store",
		Name:      "commits_total",
		Help:      "Total successful block commits",
	}, []string{"domain"})

	RecordsCommittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namada_indexer",
		Subsystem: "store",
		Name:      "records_committed_total",
		Help:      "Total records written by kind",
	}, []string{"domain", "kind"})

	CommitLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "namada_indexer",
		Subsystem: "store",
		Name:      "commit_duration_seconds",
		Help:      "Duration of the commit transaction",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"domain"})

	// Chain RPC
	RPCRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namada_indexer",
		Subsystem: "rpc",
		Name:      "retries_total",
		Help:      "Total retried consensus RPC calls",
	}, []string{"op"})

	RPCLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "namada_indexer",
		Subsystem: "rpc",
		Name:      "call_duration_seconds",
		Help:      "Duration of successful consensus RPC calls",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"op"})

	// Cache and notifications
	CacheInvalidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namada_indexer",
		Subsystem: "cache",
		Name:      "invalidations_total",
		Help:      "Total cache invalidation attempts by result",
	}, []string{"domain", "result"})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namada_indexer",
		Subsystem: "notify",
		Name:      "notifications_total",
		Help:      "Total commit notifications by result",
	}, []string{"domain", "result"})
)

// SetLoopState marks state as current for the domain and clears the others
func SetLoopState(domain string, current string, all []string) {
	for _, s := range all {
		v := 0.0
		if s == current {
			v = 1
		}
		LoopState.WithLabelValues(domain, s).Set(v)
	}
}
