package sorting

// Bubble sorts v in place. Every pass runs to completion; there is no
// early exit when a pass makes no swaps.
func Bubble(v []int) {
	n := len(v)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if v[j] > v[j+1] {
				v[j], v[j+1] = v[j+1], v[j]
			}
		}
	}
}
