package bench

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sortbench/internal/sorting"
)

const (
	labelWidth  = 25
	headerWidth = 10
	cellWidth   = 9
	ruleWidth   = 70
	headerLabel = "Алгоритм"
	unitSuffix  = "мс"
)

// WriteReport writes results as a fixed-width table with one row per
// algorithm, in the order algorithms first appear in results, and one column
// per entry of sizes. Each cell is the truncated average in milliseconds.
func WriteReport(w io.Writer, sizes []int, results []Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%-*s", labelWidth, headerLabel)
	for _, size := range sizes {
		fmt.Fprintf(bw, " | %-*d", headerWidth, size)
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, strings.Repeat("-", ruleWidth))

	type cellKey struct {
		algorithm string
		size      int
	}
	cells := make(map[cellKey]Result, len(results))
	var order []string
	for _, res := range results {
		if !contains(order, res.Algorithm) {
			order = append(order, res.Algorithm)
		}
		cells[cellKey{res.Algorithm, res.Size}] = res
	}

	for _, name := range order {
		fmt.Fprintf(bw, "%-*s |", labelWidth, label(name))
		for _, size := range sizes {
			res, ok := cells[cellKey{name, size}]
			if !ok {
				fmt.Fprintf(bw, " %-*s   |", cellWidth, "-")
				continue
			}
			fmt.Fprintf(bw, " %-*d%s |", cellWidth, res.Millis(), unitSuffix)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

func label(name string) string {
	if a, err := sorting.Lookup(name); err == nil {
		return a.Label
	}
	return name
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
