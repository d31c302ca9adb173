package TimSort

import (
	"context"
	"math/rand"
	"testing"

	"GoTimSort/TimSort/fork_join"

	"golang.org/x/exp/slices"
)

const N = 1000000

func makeRandomInts(n int) []int32 {
	r := rand.New(rand.NewSource(42))
	ints := make([]int32, n)
	for i := 0; i < n; i++ {
		ints[i] = r.Int31n(int32(n))
	}
	return ints
}
func makeSortedInts(n int) []int32 {
	ints := make([]int32, n)
	for i := 0; i < n; i++ {
		ints[i] = int32(i)
	}
	return ints
}

func BenchmarkSortInts(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(N)
		b.StartTimer()
		slices.Sort(ints)
	}
}
func BenchmarkTimSortInts(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(N)
		b.StartTimer()
		Sort(ints)
	}
}

func BenchmarkTimSortSortedInts(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeSortedInts(N)
		b.StartTimer()
		Sort(ints)
	}
}

func BenchmarkParallelSortInts(b *testing.B) {
	taskPool := fork_join.NewForkJoinPool(0)
	defer taskPool.Close()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(N)
		b.StartTimer()
		if err := ParallelSortWith(context.Background(), ints, taskPool); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParallelSortGroupExecutor(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(N)
		b.StartTimer()
		if err := ParallelSortWith(context.Background(), ints, GroupExecutor{Limit: 8}); err != nil {
			b.Fatal(err)
		}
	}
}

func TestIsSortedFunc(t *testing.T) {
	for i := 0; i < 10; i++ {
		ints := makeRandomInts(N / 10)
		if err := ParallelSort[int32](ints); err != nil {
			t.Fatal(err)
		}
		if !IsSorted[int32](ints) {
			t.Error("Not sorted")
		}
	}
}
