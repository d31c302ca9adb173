// Package GoTimSort sorts []int32 with fixed-length insertion-sorted runs
// followed by bottom-up merge passes. The generic engine lives in package
// TimSort.
package GoTimSort

import (
	"context"

	"GoTimSort/TimSort"
)

// Sort sorts a ascending, stable and in place.
func Sort(a []int32) {
	TimSort.Sort(a)
}

// ParallelSort sorts a in place, running every pass as a batch on
// executor. See TimSort.Sorter.ParallelSort for the failure contract.
func ParallelSort(a []int32, executor TimSort.Executor) error {
	return TimSort.ParallelSortWith(context.Background(), a, executor)
}
