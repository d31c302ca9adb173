package TimSort

// insertionSort sorts the inclusive range [left, right] in place. Only
// strictly greater predecessors are shifted, so equal elements keep their
// order. Callers guarantee left <= right < len(a).
func insertionSort[T any](a []T, left, right int, less func(a, b T) bool) {
	for i := left + 1; i <= right; i++ {
		pivot := a[i]
		j := i
		for j > left && less(pivot, a[j-1]) {
			a[j] = a[j-1]
			j--
		}
		a[j] = pivot
	}
}
