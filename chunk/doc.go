// Package chunk provides the chunked-parallel execution harness for vector operators.
//
// Operators never spawn goroutines themselves. They resolve a Pool from the
// configured process count, size their work with one of the two chunking
// policies, build one Task per chunk over pre-sliced immutable inputs, and
// hand the tasks to Run. Task outputs have disjoint key sets by construction,
// so merging results is an order-independent union.
//
// Sizing policies:
//   - KeyChunkSize: for work keyed by segment (operator key spaces). Targets
//     three chunks per worker, clamped up to an operator-specific minimum so
//     scheduling overhead never dominates small inputs.
//   - RowChunkSize: for tabular ingestion. Uses a fixed chunk size unless the
//     input is too small to fill every worker, in which case rows divide
//     evenly across workers.
//
// Failure model: the first task error aborts the invocation; queued tasks are
// skipped, in-flight tasks finish but their results are discarded, and the
// error is returned to the caller. There are no retries and no partial
// results.
package chunk
