// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Process runs a worker pool over the provided work items, invoking process for each.
// If process returns an error, the pool cancels the context and stops further work.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T, workerCount)
	errs := make(chan error, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						select {
						case errs <- err:
						default:
						}
						if onCancel != nil {
							onCancel()
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		for _, item := range items {
			select {
			case <-ctx.Done():
				close(tasks)
				return
			case tasks <- item:
			}
		}
		close(tasks)
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Map applies fn to every item concurrently and returns results in input order.
// The first error aborts the remaining work and is returned; no partial results are exposed.
func Map[T, R any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	err := Process(ctx, workerCount, indexes(len(items)), func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		if err != nil {
			return err
		}
		results[i] = r
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Outcome is the per-item result of MapAll.
type Outcome[R any] struct {
	Value R
	Err   error
}

// MapAll applies fn to every item concurrently and waits for all of them, keeping
// each item's value or error in input order. Only context cancellation ends it early;
// items that never ran carry the context error.
func MapAll[T, R any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T) (R, error)) []Outcome[R] {
	outcomes := make([]Outcome[R], len(items))
	ran := make([]bool, len(items))
	_ = Process(ctx, workerCount, indexes(len(items)), func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		outcomes[i] = Outcome[R]{Value: r, Err: err}
		ran[i] = true
		return nil
	}, nil)
	for i := range outcomes {
		if !ran[i] {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			outcomes[i].Err = err
		}
	}
	return outcomes
}

func indexes(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
