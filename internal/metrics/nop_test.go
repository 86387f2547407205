package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_RecordOperatorDuration(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordOperatorDuration("multiply", 1.5)
		metrics.RecordOperatorDuration("", 0)
		metrics.RecordOperatorDuration("translate_zoning", -1.0)
	})
}

func TestNopMetrics_RecordChunkExecution(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordChunkExecution("from_rows", 12, 4)
		metrics.RecordChunkExecution("", 0, 0)
		metrics.RecordChunkExecution("to_rows", -1, -1)
	})
}

func TestNopMetrics_RecordIngest(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordRowsIngested(100000)
		metrics.RecordRowsIngested(0)
		metrics.RecordSegmentsInfilled(3)
		metrics.RecordVectorSize(360, 2770)
	})
}

func BenchmarkNopMetrics_RecordOperatorDuration(b *testing.B) {
	metrics := NewNop()
	for b.Loop() {
		metrics.RecordOperatorDuration("multiply", 1.5)
	}
}

func BenchmarkNopMetrics_RecordChunkExecution(b *testing.B) {
	metrics := NewNop()
	for b.Loop() {
		metrics.RecordChunkExecution("from_rows", 12, 4)
	}
}

func BenchmarkNopMetrics_RecordRowsIngested(b *testing.B) {
	metrics := NewNop()
	for b.Loop() {
		metrics.RecordRowsIngested(100000)
	}
}
