package sorting

// Merge sorts v in place with top-down merge sort. Each merge step allocates
// its own copies of the two halves.
func Merge(v []int) {
	if len(v) > 1 {
		mergeRange(v, 0, len(v)-1)
	}
}

func mergeRange(v []int, left, right int) {
	if left < right {
		mid := left + (right-left)/2
		mergeRange(v, left, mid)
		mergeRange(v, mid+1, right)
		merge(v, left, mid, right)
	}
}

// merge combines the sorted runs v[left:mid+1] and v[mid+1:right+1].
// Ties take from the left run.
func merge(v []int, left, mid, right int) {
	leftRun := make([]int, mid-left+1)
	rightRun := make([]int, right-mid)
	copy(leftRun, v[left:mid+1])
	copy(rightRun, v[mid+1:right+1])

	li, ri, k := 0, 0, left
	for li < len(leftRun) && ri < len(rightRun) {
		if leftRun[li] <= rightRun[ri] {
			v[k] = leftRun[li]
			li++
		} else {
			v[k] = rightRun[ri]
			ri++
		}
		k++
	}
	k += copy(v[k:], leftRun[li:])
	copy(v[k:], rightRun[ri:])
}
