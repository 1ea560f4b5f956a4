package sorting

import "math"

// Radix sorts v in place with an LSD base-10 radix sort.
//
// Negative input is handled by shifting every element by -min so the
// slice is non-negative, sorting, and shifting back. The number of digit
// passes is taken from the maximum of the shifted slice. When max-min does
// not fit in an int the shift would overflow, so the offsets are sorted as
// uint instead, where any int span fits.
func Radix(v []int) {
	if len(v) == 0 {
		return
	}
	minVal, maxVal := bounds(v)
	if minVal < 0 && maxVal > math.MaxInt+minVal {
		radixWide(v, minVal)
		return
	}
	if minVal < 0 {
		for i := range v {
			v[i] -= minVal
		}
	}

	_, maxVal = bounds(v)
	output := make([]int, len(v))
	for exp := 1; maxVal/exp > 0; exp *= 10 {
		countSortByDigit(v, output, exp)
		if maxVal/exp < 10 {
			break
		}
	}

	if minVal < 0 {
		for i := range v {
			v[i] += minVal
		}
	}
}

func countSortByDigit(v, output []int, exp int) {
	var count [10]int
	for _, x := range v {
		count[(x/exp)%10]++
	}
	for i := 1; i < 10; i++ {
		count[i] += count[i-1]
	}
	for i := len(v) - 1; i >= 0; i-- {
		d := (v[i] / exp) % 10
		count[d]--
		output[count[d]] = v[i]
	}
	copy(v, output)
}

func radixWide(v []int, minVal int) {
	keys := make([]uint, len(v))
	var maxKey uint
	for i, x := range v {
		keys[i] = uint(x) - uint(minVal)
		if keys[i] > maxKey {
			maxKey = keys[i]
		}
	}

	output := make([]uint, len(keys))
	for exp := uint(1); ; exp *= 10 {
		var count [10]int
		for _, k := range keys {
			count[(k/exp)%10]++
		}
		for i := 1; i < 10; i++ {
			count[i] += count[i-1]
		}
		for i := len(keys) - 1; i >= 0; i-- {
			d := (keys[i] / exp) % 10
			count[d]--
			output[count[d]] = keys[i]
		}
		copy(keys, output)
		if maxKey/exp < 10 {
			break
		}
	}

	for i, k := range keys {
		v[i] = int(k + uint(minVal))
	}
}
