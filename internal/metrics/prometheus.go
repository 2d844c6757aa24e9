// Package metrics exposes the engine's measurements through Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dwallet_operation_duration_seconds",
		Help:    "Duration of ledger engine operations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	transactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dwallet_transactions_total",
		Help: "Committed ledger transactions by type.",
	}, []string{"type"})

	transactionVolume = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dwallet_transaction_volume_total",
		Help: "Total committed transaction volume by type, in currency units.",
	}, []string{"type"})

	conflictRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dwallet_conflict_retries_total",
		Help: "Optimistic-concurrency retries by operation.",
	}, []string{"operation"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dwallet_errors_total",
		Help: "Engine operation failures by operation and kind.",
	}, []string{"operation", "kind"})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dwallet_cache_lookups_total",
		Help: "Wallet cache lookups by operation and outcome.",
	}, []string{"operation", "outcome"})
)

// PrometheusCollector implements wallet.MetricsCollector on top of the
// default Prometheus registry.
type PrometheusCollector struct{}

func NewPrometheusCollector() *PrometheusCollector {
	return &PrometheusCollector{}
}

func (PrometheusCollector) RecordOperationDuration(operation string, duration time.Duration) {
	operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (PrometheusCollector) RecordTransaction(txType string, amount decimal.Decimal) {
	transactionsTotal.WithLabelValues(txType).Inc()
	volume, _ := amount.Float64()
	transactionVolume.WithLabelValues(txType).Add(volume)
}

func (PrometheusCollector) RecordConflictRetry(operation string) {
	conflictRetries.WithLabelValues(operation).Inc()
}

func (PrometheusCollector) RecordError(operation, kind string) {
	errorsTotal.WithLabelValues(operation, kind).Inc()
}

func (PrometheusCollector) RecordCacheHit(operation string) {
	cacheLookups.WithLabelValues(operation, "hit").Inc()
}

func (PrometheusCollector) RecordCacheMiss(operation string) {
	cacheLookups.WithLabelValues(operation, "miss").Inc()
}
