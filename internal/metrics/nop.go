package metrics

import "github.com/tdmkit/dvec/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	metrics := metrics.NewNop()
//	v, err := dvec.New(zoning, seg, data, dvec.WithMetrics(metrics))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// OperatorMetrics implementation

// RecordOperatorDuration discards the operator duration metric.
func (n *NopMetrics) RecordOperatorDuration(_ /* operator */ string, _ /* seconds */ float64) {
	// No-op
}

// RecordOperatorError discards the operator error counter.
func (n *NopMetrics) RecordOperatorError(_ /* operator */ string) {
	// No-op
}

// ChunkMetrics implementation

// RecordChunkExecution discards the chunk fan-out metric.
func (n *NopMetrics) RecordChunkExecution(_ /* operator */ string, _ /* chunks */, _ /* workers */ int) {
	// No-op
}

// IngestMetrics implementation

// RecordRowsIngested discards the ingested row counter.
func (n *NopMetrics) RecordRowsIngested(_ /* rows */ int) {
	// No-op
}

// RecordSegmentsInfilled discards the infilled segment counter.
func (n *NopMetrics) RecordSegmentsInfilled(_ /* segments */ int) {
	// No-op
}

// RecordVectorSize discards the vector size metric.
func (n *NopMetrics) RecordVectorSize(_ /* segments */, _ /* zones */ int) {
	// No-op
}
