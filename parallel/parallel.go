package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

var (
	// ErrNilFunc means a required callback was nil.
	ErrNilFunc = errors.New("parallel: nil function")
	// ErrNoMatch means FirstMatch exhausted every candidate.
	ErrNoMatch = errors.New("parallel: no candidate matched")
)

// MapReduce evaluates mapFn over every item using a pool of workers
// and folds the results with reduceFn. Each worker folds its own
// partial result locally; the partials are folded once more after the
// pool drains, so reduceFn must be commutative and associative.
//
// workers <= 0 selects runtime.NumCPU(). An empty items slice returns
// the zero R with no error. The first mapFn error (or a canceled ctx)
// cancels the remaining work and is returned.
func MapReduce[T, R any](
	ctx context.Context,
	items []T,
	workers int,
	mapFn func(context.Context, T) (R, error),
	reduceFn func(R, R) R,
) (R, error) {
	var zero R
	if mapFn == nil || reduceFn == nil {
		return zero, ErrNilFunc
	}
	if len(items) == 0 {
		return zero, nil
	}
	workers = clampWorkers(workers, len(items))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	tasks := make(chan T, workers*2) // buffered for backpressure
	partials := make(chan R, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var acc R
			have := false
			for item := range tasks {
				r, err := mapFn(ctx, item)
				if err != nil {
					fail(err)
					return
				}
				if !have {
					acc, have = r, true
				} else {
					acc = reduceFn(acc, r)
				}
			}
			if have {
				partials <- acc
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case tasks <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(partials)

	if firstErr != nil {
		return zero, firstErr
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	var acc R
	have := false
	for p := range partials {
		if !have {
			acc, have = p, true
		} else {
			acc = reduceFn(acc, p)
		}
	}
	return acc, nil
}

// FirstMatch probes candidates concurrently until one worker reports a
// hit (probe returns ok=true), then cancels the rest and returns that
// result. With no hit across all candidates it returns ErrNoMatch.
//
// When several candidates could match, the one returned is whichever
// worker won the race; callers needing a unique answer must ensure at
// most one candidate matches.
func FirstMatch[T, R any](
	ctx context.Context,
	items []T,
	workers int,
	probe func(context.Context, T) (R, bool, error),
) (R, error) {
	var zero R
	if probe == nil {
		return zero, ErrNilFunc
	}
	if len(items) == 0 {
		return zero, ErrNoMatch
	}
	workers = clampWorkers(workers, len(items))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type hit struct {
		value R
		err   error
	}
	var (
		wg      sync.WaitGroup
		once    sync.Once
		outcome hit
		found   bool
	)
	settle := func(h hit, ok bool) {
		once.Do(func() {
			outcome = h
			found = ok
			cancel()
		})
	}

	tasks := make(chan T, workers*2)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				r, ok, err := probe(ctx, item)
				if err != nil {
					settle(hit{err: err}, false)
					return
				}
				if ok {
					settle(hit{value: r}, true)
					return
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case tasks <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()

	switch {
	case found:
		return outcome.value, nil
	case outcome.err != nil:
		return zero, outcome.err
	case ctx.Err() != nil:
		return zero, ctx.Err()
	default:
		return zero, ErrNoMatch
	}
}

// clampWorkers resolves the pool size: non-positive means NumCPU, and
// the pool never exceeds the number of items.
func clampWorkers(workers, n int) int {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	return workers
}
