package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"sort"
	"time"

	"sortbench/internal/sorting"
)

// ErrNotSorted is returned in verify mode when a sort leaves its input out
// of order.
var ErrNotSorted = errors.New("output not sorted")

// Result is the timing of one algorithm at one size.
type Result struct {
	Algorithm   string
	Size        int
	Repetitions int
	Total       time.Duration
}

func (r Result) Average() time.Duration {
	if r.Repetitions <= 0 {
		return 0
	}
	return r.Total / time.Duration(r.Repetitions)
}

// Millis is the average in whole milliseconds, truncated.
func (r Result) Millis() int64 {
	return r.Average().Milliseconds()
}

// Runner times every configured algorithm over every configured size.
type Runner struct {
	cfg    Config
	rng    *rand.Rand
	now    func() time.Time
	logger *log.Logger
	sort   func([]int, string) error
}

type Option func(*Runner)

// WithLogger sends per-cell progress to l.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

func WithSorter(fn func([]int, string) error) Option {
	return func(r *Runner) { r.sort = fn }
}

// NewRunner validates cfg and returns a Runner for it.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := &Runner{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		now:    time.Now,
		logger: log.New(io.Discard, "", 0),
		sort:   sorting.Sort,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run benchmarks each algorithm at each size, in configuration order, and
// returns one Result per pair. ctx is checked between repetitions.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(r.cfg.Algorithms)*len(r.cfg.Sizes))
	for _, name := range r.cfg.Algorithms {
		for _, size := range r.cfg.Sizes {
			res, err := r.measure(ctx, name, size)
			if err != nil {
				return nil, err
			}
			r.logger.Printf("%s n=%d reps=%d avg=%v", name, size, res.Repetitions, res.Average())
			results = append(results, res)
		}
	}
	return results, nil
}

func (r *Runner) measure(ctx context.Context, name string, size int) (Result, error) {
	array := Generate(r.rng, size, r.cfg.Min, r.cfg.Max)
	res := Result{Algorithm: name, Size: size, Repetitions: Repetitions(size)}

	for i := 0; i < res.Repetitions; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		work := make([]int, size)
		copy(work, array)

		start := r.now()
		err := r.sort(work, name)
		res.Total += r.now().Sub(start)
		if err != nil {
			return Result{}, fmt.Errorf("sort %s n=%d: %w", name, size, err)
		}

		if r.cfg.Verify && !sort.IntsAreSorted(work) {
			return Result{}, fmt.Errorf("%s n=%d repetition %d: %w", name, size, i, ErrNotSorted)
		}
	}
	return res, nil
}
