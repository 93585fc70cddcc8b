// Package parallel runs independent candidate evaluations over a
// bounded worker pool and folds their results back together.
//
// What
//
//   - MapReduce: fan a slice of items out to N workers, map each item
//     to a result, and fold the results with a commutative reduction.
//   - FirstMatch: scan candidates concurrently and stop the whole pool
//     as soon as one worker reports a hit.
//
// Why
//
//   - Search-style workloads (counting matches across a large range,
//     probing a coordinate space for the one free cell) decompose into
//     embarrassingly parallel per-item work with a cheap merge step.
//   - A buffered task channel gives backpressure: feeding stops while
//     every worker is busy, so memory stays proportional to the pool.
//
// Determinism
//
//	MapReduce is deterministic only when reduceFn is commutative and
//	associative; workers fold partial results in completion order.
//	FirstMatch returns *a* match, not the lowest-indexed one — callers
//	needing a unique answer must ensure at most one candidate matches.
//
// Complexity (n = len(items), w = workers)
//
//   - Time:   O(n/w · cost(mapFn)) wall-clock, O(n) total work
//   - Memory: O(w) goroutines and buffered slots
//
// Errors
//
//   - ErrNilFunc  — a required callback was nil
//   - ErrNoMatch  — FirstMatch exhausted every candidate
//
// Both functions honor context cancellation: the first worker error or
// a canceled context stops feeding and drains the pool promptly.
package parallel
