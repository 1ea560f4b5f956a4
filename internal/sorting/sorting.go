// Package sorting implements the in-place integer sorts exercised by the
// benchmark and a name-based dispatcher over them.
package sorting

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned when a name matches no registered sort.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm names accepted by Sort and Lookup.
const (
	NameInsertion = "insertion"
	NameBubble    = "bubble"
	NameQuick     = "quick"
	NameMerge     = "merge"
	NameCounting  = "counting"
	NameRadix     = "radix"
)

type Algorithm struct {
	Name   string
	Label  string // column label used in the report table
	Stable bool
	Sort   func([]int)
}

var registry = []Algorithm{
	{Name: NameInsertion, Label: "Сортування вставками", Stable: true, Sort: Insertion},
	{Name: NameBubble, Label: "Бульбашкове сортування", Stable: true, Sort: Bubble},
	{Name: NameQuick, Label: "Швидке сортування", Stable: false, Sort: Quick},
	{Name: NameMerge, Label: "Злиття", Stable: true, Sort: Merge},
	{Name: NameCounting, Label: "Підрахунком", Stable: true, Sort: Counting},
	{Name: NameRadix, Label: "Радикс-сортування", Stable: true, Sort: Radix},
}

// Algorithms returns every registered sort in report order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(registry))
	copy(out, registry)
	return out
}

func Names() []string {
	names := make([]string, len(registry))
	for i, a := range registry {
		names[i] = a.Name
	}
	return names
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	for _, a := range registry {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Sort sorts v in place with the named algorithm. An unknown name leaves v
// untouched and returns an error wrapping ErrUnknownAlgorithm.
func Sort(v []int, name string) error {
	switch name {
	case NameInsertion:
		Insertion(v)
	case NameBubble:
		Bubble(v)
	case NameQuick:
		Quick(v)
	case NameMerge:
		Merge(v)
	case NameCounting:
		Counting(v)
	case NameRadix:
		Radix(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return nil
}
