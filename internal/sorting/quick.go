package sorting

// Quick sorts v in place using Lomuto partitioning with the last element of
// each subrange as pivot. Sorted and reverse-sorted input hit the O(n²) case
// and recurse n levels deep.
func Quick(v []int) {
	if len(v) > 1 {
		quickRange(v, 0, len(v)-1)
	}
}

func quickRange(v []int, low, high int) {
	if low < high {
		p := partition(v, low, high)
		quickRange(v, low, p-1)
		quickRange(v, p+1, high)
	}
}

func partition(v []int, low, high int) int {
	pivot := v[high]
	i := low - 1
	for j := low; j < high; j++ {
		if v[j] < pivot {
			i++
			v[i], v[j] = v[j], v[i]
		}
	}
	v[i+1], v[high] = v[high], v[i+1]
	return i + 1
}
