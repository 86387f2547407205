package chunk

import (
	"sync"
	"sync/atomic"
)

// Task computes one chunk's output from inputs sliced before Run was called.
//
// Tasks must not share mutable state: everything a task reads is captured at
// construction time, and everything it produces is its return value.
type Task[T any] func() (T, error)

// Run executes tasks across a pool of workers and collects their results in
// task order.
//
// With one worker or a single task, everything runs inline in the caller.
// Otherwise workers pull tasks from a shared queue; the first error aborts
// the invocation, skipping tasks not yet started, and is returned after all
// in-flight tasks finish. On error the partial results are discarded.
//
// Parameters:
//   - workers: Worker count (from Pool.Workers)
//   - tasks: One task per chunk
//
// Returns:
//   - []T: Per-task results in task order
//   - error: The first task error, or nil
func Run[T any](workers int, tasks []Task[T]) ([]T, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	if workers <= 1 || len(tasks) == 1 {
		return runSerial(tasks)
	}

	results := make([]T, len(tasks))
	indexes := make(chan int)

	var (
		wg       sync.WaitGroup
		aborted  atomic.Bool
		firstErr error
		errOnce  sync.Once
	)

	workers = min(workers, len(tasks))
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range indexes {
				if aborted.Load() {
					continue
				}
				out, err := tasks[i]()
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						aborted.Store(true)
					})

					continue
				}
				results[i] = out
			}
		}()
	}

	for i := range tasks {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}

func runSerial[T any](tasks []Task[T]) ([]T, error) {
	results := make([]T, len(tasks))
	for i, task := range tasks {
		out, err := task()
		if err != nil {
			return nil, err
		}
		results[i] = out
	}

	return results, nil
}
