package GoTimSort

import (
	"io"
	"math/rand"
	"testing"

	"GoTimSort/TimSort"
	"GoTimSort/TimSort/fork_join"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

func TestSort(t *testing.T) {
	a := []int32{10, 3, 2, 19, 7, 15, 23, 13, 1}
	Sort(a)
	if diff := cmp.Diff([]int32{1, 2, 3, 7, 10, 13, 15, 19, 23}, a); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func TestParallelSort(t *testing.T) {
	taskPool := fork_join.NewForkJoinPool(4)
	taskPool.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer taskPool.Close()

	r := rand.New(rand.NewSource(42))
	for _, exec := range []TimSort.Executor{taskPool, TimSort.GroupExecutor{Limit: 4}} {
		a := make([]int32, 10000)
		for i := range a {
			a[i] = r.Int31() - (1 << 30)
		}
		want := slices.Clone(a)
		Sort(want)
		if err := ParallelSort(a, exec); err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(want, a) {
			t.Errorf("%T: ParallelSort differs from Sort", exec)
		}
	}
}
