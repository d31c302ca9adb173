package TimSort

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// 固定长度的run先用插入排序，再自底向上两两归并，每轮归并长度翻倍。
//
// RUN 越大插入排序的开销越大，归并的轮数越少。

const (
	DEFAULT_RUN         = 32
	MIN_ARRAY_SORT_GRAN = 1 << 13
)

var (
	ErrInvalidRun  = errors.New("TimSort: run length must be positive")
	ErrNilExecutor = errors.New("TimSort: nil executor")
)

// Sorter is a stable in-place sort with a fixed run length. It holds no
// per-call state; one Sorter may be used from many goroutines at once.
type Sorter[T any] struct {
	run  int
	less func(a, b T) bool
}

// NewSorter returns a Sorter that insertion-sorts runs of length run
// before merging. Floating point NaNs are not totally ordered and leave
// the result unspecified.
func NewSorter[T constraints.Ordered](run int) (*Sorter[T], error) {
	return newSorterFunc(run, orderedLess[T])
}

// newSorterFunc sorts by a strict weak order; equal elements are those
// for which neither less(a, b) nor less(b, a) holds.
func newSorterFunc[T any](run int, less func(a, b T) bool) (*Sorter[T], error) {
	if run <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRun, run)
	}
	return &Sorter[T]{run: run, less: less}, nil
}

func orderedLess[T constraints.Ordered](a, b T) bool {
	return a < b
}

func (s *Sorter[T]) Run() int {
	return s.run
}

// Sort sorts a ascending, in place.
func (s *Sorter[T]) Sort(a []T) {
	n := len(a)
	if n < 2 {
		return
	}
	sortRuns(a, s.run, s.less)
	for size := s.run; size < n; size *= 2 {
		mergePass(a, size, s.less)
	}
}

// SortRange sorts a[lo:hi].
func (s *Sorter[T]) SortRange(a []T, lo, hi int) {
	if lo < 0 || lo > hi || hi > len(a) {
		panic("assert lo >= 0 && lo <= hi && hi <= len(a)")
	}
	s.Sort(a[lo:hi])
}

// sortRuns insertion-sorts every run [i, min(i+run, n)).
func sortRuns[T any](a []T, run int, less func(a, b T) bool) {
	n := len(a)
	for i := 0; i < n; i += run {
		insertionSort(a, i, min(i+run-1, n-1), less)
	}
}

// mergePass merges each pair of adjacent sorted segments of length size.
// A trailing segment with no right half is merged against an empty one.
func mergePass[T any](a []T, size int, less func(a, b T) bool) {
	n := len(a)
	for left := 0; left < n; left += 2 * size {
		mid := min(left+size-1, n-1)
		right := min(left+2*size-1, n-1)
		merge(a, left, mid, right, less)
	}
}

// Sort sorts a with DEFAULT_RUN.
func Sort[T constraints.Ordered](a []T) {
	s := &Sorter[T]{run: DEFAULT_RUN, less: orderedLess[T]}
	s.Sort(a)
}

// SortRun sorts a with the given run length.
func SortRun[T constraints.Ordered](a []T, run int) error {
	s, err := NewSorter[T](run)
	if err != nil {
		return err
	}
	s.Sort(a)
	return nil
}

func SortRange[T constraints.Ordered](a []T, index1, index2 int) {
	if index1 < index2 {
		s := &Sorter[T]{run: DEFAULT_RUN, less: orderedLess[T]}
		s.SortRange(a, index1, index2)
	}
}

//是否是单调序列
func IsSorted[T constraints.Ordered](a []T) bool {
	return slices.IsSorted(a)
}
