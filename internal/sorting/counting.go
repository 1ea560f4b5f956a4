package sorting

// Counting sorts v in place. It allocates a count slice spanning
// max(v)-min(v)+1 values plus an output slice of len(v), so memory grows
// with the value range, not just the input length. The span must fit in an
// int and in memory; wider input panics in make.
func Counting(v []int) {
	n := len(v)
	if n == 0 {
		return
	}
	minVal, maxVal := bounds(v)

	count := make([]int, maxVal-minVal+1)
	for _, x := range v {
		count[x-minVal]++
	}
	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]
	}

	// Walking backwards keeps equal values in input order.
	output := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		idx := v[i] - minVal
		count[idx]--
		output[count[idx]] = v[i]
	}
	copy(v, output)
}

func bounds(v []int) (minVal, maxVal int) {
	minVal, maxVal = v[0], v[0]
	for _, x := range v[1:] {
		if x < minVal {
			minVal = x
		}
		if x > maxVal {
			maxVal = x
		}
	}
	return minVal, maxVal
}
