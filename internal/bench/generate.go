package bench

import "math/rand"

// Generate returns size values drawn uniformly from [lo, hi).
func Generate(rng *rand.Rand, size, lo, hi int) []int {
	v := make([]int, size)
	for i := range v {
		v[i] = lo + rng.Intn(hi-lo)
	}
	return v
}
