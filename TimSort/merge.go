package TimSort

// merge combines the sorted ranges [left, mid] and [mid+1, right] into a
// sorted [left, right]. On ties the element from the left range goes
// first. mid == right is allowed and leaves the range as it is.
//
// Both halves are copied into buffers owned by this call, so merges on
// disjoint ranges may run concurrently.
func merge[T any](a []T, left, mid, right int, less func(a, b T) bool) {
	lo := make([]T, mid-left+1)
	hi := make([]T, right-mid)
	copy(lo, a[left:mid+1])
	copy(hi, a[mid+1:right+1])

	i, j, k := 0, 0, left
	for i < len(lo) && j < len(hi) {
		// lo[i] <= hi[j]
		if !less(hi[j], lo[i]) {
			a[k] = lo[i]
			i++
		} else {
			a[k] = hi[j]
			j++
		}
		k++
	}
	k += copy(a[k:], lo[i:])
	copy(a[k:], hi[j:])
}
