// Package bench drives the sorting benchmark: it generates input arrays,
// times repeated sorts and formats the results table.
package bench

import (
	"errors"
	"fmt"

	"sortbench/internal/sorting"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Default benchmark parameters.
const (
	DefaultMin = -10000
	DefaultMax = 10000

	// maxValueSpan bounds Max-Min so counting sort's counter slice stays
	// allocatable.
	maxValueSpan = 1 << 24

	// Sizes below this threshold run manyRepetitions times, larger ones
	// fewRepetitions times.
	repetitionThreshold = 10000
	manyRepetitions     = 100
	fewRepetitions      = 10
)

var DefaultSizes = []int{10, 1000, 10000, 100000}

// Config controls a benchmark run.
type Config struct {
	Sizes      []int
	Algorithms []string
	Min, Max   int   // values are drawn from [Min, Max)
	Seed       int64 // 0 seeds from the clock
	Verify     bool  // check every sorted clone
}

// DefaultConfig returns the fixed configuration: all six algorithms over
// DefaultSizes with values in [DefaultMin, DefaultMax).
func DefaultConfig() Config {
	sizes := make([]int, len(DefaultSizes))
	copy(sizes, DefaultSizes)
	return Config{
		Sizes:      sizes,
		Algorithms: sorting.Names(),
		Min:        DefaultMin,
		Max:        DefaultMax,
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfig)
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("%w: size %d is not positive", ErrInvalidConfig, s)
		}
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms", ErrInvalidConfig)
	}
	for _, name := range c.Algorithms {
		if _, err := sorting.Lookup(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.Min >= c.Max {
		return fmt.Errorf("%w: empty value range [%d, %d)", ErrInvalidConfig, c.Min, c.Max)
	}
	// A span wider than math.MaxInt wraps to a non-positive difference.
	if span := c.Max - c.Min; span <= 0 || span > maxValueSpan {
		return fmt.Errorf("%w: value range [%d, %d) wider than %d", ErrInvalidConfig, c.Min, c.Max, maxValueSpan)
	}
	return nil
}

// Repetitions returns how many times an array of the given size is sorted.
func Repetitions(size int) int {
	if size < repetitionThreshold {
		return manyRepetitions
	}
	return fewRepetitions
}
