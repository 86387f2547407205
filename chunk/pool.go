package chunk

import "runtime"

// chunksPerWorker is the target chunk count multiplier for keyed work.
// Several chunks per worker keeps the pool busy when chunk costs are uneven.
const chunksPerWorker = 3

// Pool sizes and executes parallel work for a configured process count.
//
// The zero value is not useful; construct with NewPool.
type Pool struct {
	workers int
	divider int
}

// NewPool resolves a configured process count into a concrete pool.
//
// Process count semantics:
//   - 0: run serially in the caller (one worker, one chunk per invocation)
//   - n > 0: n workers
//   - n < 0: all available cores minus |n|, never fewer than one
//
// Parameters:
//   - processCount: Configured process count
//
// Returns:
//   - Pool: Resolved pool
func NewPool(processCount int) Pool {
	if processCount == 0 {
		return Pool{workers: 1, divider: 1}
	}

	workers := processCount
	if workers < 0 {
		workers = runtime.NumCPU() + processCount
	}
	workers = max(workers, 1)

	return Pool{workers: workers, divider: workers * chunksPerWorker}
}

// Workers returns the resolved worker count. One means serial execution.
func (p Pool) Workers() int {
	return p.workers
}

// KeyChunkSize computes the chunk size for n segment-keyed work items.
//
// The size targets divider chunks in total and is then clamped up to minSize,
// the operator's minimum worthwhile chunk.
//
// Parameters:
//   - n: Total work items
//   - minSize: Operator minimum chunk size (>= 1)
//
// Returns:
//   - int: Chunk size (0 when n == 0)
func (p Pool) KeyChunkSize(n, minSize int) int {
	if n <= 0 {
		return 0
	}

	size := ceilDiv(n, p.divider)

	return max(size, minSize)
}

// RowChunkSize computes the chunk size for n tabular rows.
//
// Rows use a fixed chunk size; an input too small to fill every worker at
// that size divides evenly across workers instead.
//
// Parameters:
//   - n: Total rows
//   - fixedSize: Configured row chunk size (>= 1)
//
// Returns:
//   - int: Chunk size (0 when n == 0)
func (p Pool) RowChunkSize(n, fixedSize int) int {
	if n <= 0 {
		return 0
	}
	if n < fixedSize*p.workers {
		return ceilDiv(n, p.workers)
	}

	return fixedSize
}

// Split divides items into successive chunks of at most size elements.
// Chunks are subslices of items; callers must treat them as read-only.
//
// Returns:
//   - [][]T: The chunks in input order (nil when items is empty or size < 1)
func Split[T any](items []T, size int) [][]T {
	if len(items) == 0 || size < 1 {
		return nil
	}

	chunks := make([][]T, 0, ceilDiv(len(items), size))
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}

	return chunks
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
