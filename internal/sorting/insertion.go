package sorting

func Insertion(v []int) {
	n := len(v)
	for i := 1; i < n; i++ {
		key := v[i]
		j := i - 1
		for j >= 0 && v[j] > key {
			v[j+1] = v[j]
			j--
		}
		v[j+1] = key
	}
}
