package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods are called from parallel workers and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	OperatorMetrics
	ChunkMetrics
	IngestMetrics
}

// OperatorMetrics defines metrics for vector operator invocations.
type OperatorMetrics interface {
	// RecordOperatorDuration records one operator invocation.
	//
	// Parameters:
	//   - operator: Operator name ("multiply", "aggregate", "translate_zoning", ...)
	//   - seconds: Wall time of the invocation
	RecordOperatorDuration(operator string, seconds float64)

	// RecordOperatorError records an operator invocation that returned an error.
	RecordOperatorError(operator string)
}

// ChunkMetrics defines metrics for the chunked-parallel scheduler.
type ChunkMetrics interface {
	// RecordChunkExecution records one parallel fan-out.
	//
	// Parameters:
	//   - operator: Operator that requested the execution
	//   - chunks: Number of chunks the work divided into
	//   - workers: Worker pool size used
	RecordChunkExecution(operator string, chunks, workers int)
}

// IngestMetrics defines metrics for tabular ingestion and construction.
type IngestMetrics interface {
	// RecordRowsIngested counts rows accepted by the tabular adapter.
	RecordRowsIngested(rows int)

	// RecordSegmentsInfilled counts segments absent from input and infilled
	// with the default value during construction.
	RecordSegmentsInfilled(segments int)

	// RecordVectorSize records the shape of a constructed vector (gauge metrics).
	RecordVectorSize(segments, zones int)
}
