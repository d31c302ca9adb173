package TimSort

import (
	"context"

	"GoTimSort/TimSort/fork_join"

	"golang.org/x/sync/errgroup"
)

// GroupExecutor runs each task on its own goroutine, at most Limit at a
// time (Limit <= 0 means no limit). Once a task panics, tasks that have
// not started are skipped and the first failure is returned.
type GroupExecutor struct {
	Limit int
}

func (g GroupExecutor) InvokeAll(ctx context.Context, tasks []func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// Started tasks always finish; only a failure inside the batch stops it.
	eg, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	if g.Limit > 0 {
		eg.SetLimit(g.Limit)
	}
	for _, task := range tasks {
		task := task
		eg.Go(func() (err error) {
			if gctx.Err() != nil {
				return nil
			}
			defer func() {
				if r := recover(); r != nil {
					err = fork_join.NewPanicError(r)
				}
			}()
			task()
			return nil
		})
	}
	return eg.Wait()
}
