package ops

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sync/errgroup"
)

// Workers resolves a worker pool size; zero or negative means one worker per
// logical CPU
func Workers(n int) int {
	if n > 0 {
		return n
	}
	if c, err := cpu.Counts(true); err == nil && c > 0 {
		return c
	}
	return runtime.NumCPU()
}

// Parallel maps fn over items on a bounded worker pool and returns the
// results in input order. fn must be pure with respect to shared state; the
// first error cancels the remaining work.
func Parallel[T, R any](ctx context.Context, workers int, items []T, fn func(T) (R, error)) ([]R, error) {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers))

	out := make([]R, len(items))
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			r, err := fn(item)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
