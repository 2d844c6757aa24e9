package wallet

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricsCollector receives engine-level measurements. Implementations must
// be safe for concurrent use.
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordTransaction(txType string, amount decimal.Decimal)
	RecordConflictRetry(operation string)
	RecordError(operation, kind string)
	RecordCacheHit(operation string)
	RecordCacheMiss(operation string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOperationDuration(string, time.Duration) {}
func (NoopMetricsCollector) RecordTransaction(string, decimal.Decimal)     {}
func (NoopMetricsCollector) RecordConflictRetry(string)                    {}
func (NoopMetricsCollector) RecordError(string, string)                    {}
func (NoopMetricsCollector) RecordCacheHit(string)                         {}
func (NoopMetricsCollector) RecordCacheMiss(string)                        {}
