package TimSort

import (
	"context"
	"fmt"
	"runtime"

	"GoTimSort/TimSort/fork_join"

	"golang.org/x/exp/constraints"
)

// Executor runs a batch of independent tasks and returns once every task
// of the batch has finished. A non-nil error means at least one task did
// not run to completion.
type Executor interface {
	InvokeAll(ctx context.Context, tasks []func()) error
}

var _ Executor = (*fork_join.ForkJoinPool)(nil)

// ParallelSort sorts a with the same result as Sort. Every pass is split
// into disjoint chunks, one task per chunk, and the next pass starts only
// after exec has finished all of them.
//
// ctx is checked between passes. On any error the contents of a are
// unspecified.
func (s *Sorter[T]) ParallelSort(ctx context.Context, a []T, exec Executor) error {
	if exec == nil {
		return ErrNilExecutor
	}
	n := len(a)
	if n < 2 {
		return nil
	}
	if err := exec.InvokeAll(ctx, s.runTasks(a)); err != nil {
		return fmt.Errorf("TimSort: run pass: %w", err)
	}
	for size := s.run; size < n; size *= 2 {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := exec.InvokeAll(ctx, s.mergeTasks(a, size)); err != nil {
			return fmt.Errorf("TimSort: merge pass (size %d): %w", size, err)
		}
	}
	return nil
}

func (s *Sorter[T]) runTasks(a []T) []func() {
	n := len(a)
	tasks := make([]func(), 0, (n+s.run-1)/s.run)
	for lo := 0; lo < n; lo += s.run {
		chunk := a[lo:min(lo+s.run, n)]
		tasks = append(tasks, func() {
			insertionSort(chunk, 0, len(chunk)-1, s.less)
		})
	}
	return tasks
}

// mergeTasks skips chunks without a right half; they are already sorted.
func (s *Sorter[T]) mergeTasks(a []T, size int) []func() {
	n := len(a)
	tasks := make([]func(), 0, (n+2*size-1)/(2*size))
	for lo := 0; lo < n; lo += 2 * size {
		chunk := a[lo:min(lo+2*size, n)]
		if len(chunk) <= size {
			continue
		}
		mid := size - 1
		tasks = append(tasks, func() {
			merge(chunk, 0, mid, len(chunk)-1, s.less)
		})
	}
	return tasks
}

// ParallelSort sorts a on a temporary fork-join pool with one worker per
// CPU. Small inputs and single-CPU hosts are sorted sequentially.
func ParallelSort[T constraints.Ordered](a []T) error {
	if len(a) < MIN_ARRAY_SORT_GRAN || runtime.NumCPU() == 1 {
		Sort(a)
		return nil
	}
	taskPool := fork_join.NewForkJoinPool(int32(runtime.NumCPU()))
	defer taskPool.Close()
	return ParallelSortWith(context.Background(), a, taskPool)
}

// ParallelSortWith sorts a with DEFAULT_RUN on exec.
func ParallelSortWith[T constraints.Ordered](ctx context.Context, a []T, exec Executor) error {
	s := &Sorter[T]{run: DEFAULT_RUN, less: orderedLess[T]}
	return s.ParallelSort(ctx, a, exec)
}
