// Sorting Benchmarks - Go
//
// Times insertion, bubble, quick, merge, counting and radix sort over random
// integer arrays and prints the average per algorithm and size.
//
// Run with: go run ./cmd/sortbench
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"sortbench/internal/bench"
)

type options struct {
	cfg     bench.Config
	verbose bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	def := bench.DefaultConfig()
	var (
		sizes      = fs.String("sizes", joinInts(def.Sizes), "comma-separated array sizes")
		algorithms = fs.String("algorithms", strings.Join(def.Algorithms, ","), "comma-separated algorithm names")
		lo         = fs.Int("min", def.Min, "smallest generated value (inclusive)")
		hi         = fs.Int("max", def.Max, "largest generated value (exclusive)")
		seed       = fs.Int64("seed", 0, "PRNG seed (0 seeds from the clock)")
		verify     = fs.Bool("verify", false, "check every sorted array")
		verbose    = fs.Bool("v", false, "log progress to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	parsedSizes, err := parseInts(*sizes)
	if err != nil {
		return options{}, fmt.Errorf("-sizes: %w", err)
	}
	opts := options{
		cfg: bench.Config{
			Sizes:      parsedSizes,
			Algorithms: splitList(*algorithms),
			Min:        *lo,
			Max:        *hi,
			Seed:       *seed,
			Verify:     *verify,
		},
		verbose: *verbose,
	}
	return opts, opts.cfg.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range splitList(s) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func run(ctx context.Context, opts options, stdout io.Writer, logger *log.Logger) error {
	runnerOpts := []bench.Option{}
	if opts.verbose {
		runnerOpts = append(runnerOpts, bench.WithLogger(logger))
	}
	runner, err := bench.NewRunner(opts.cfg, runnerOpts...)
	if err != nil {
		return err
	}
	results, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	return bench.WriteReport(stdout, opts.cfg.Sizes, results)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sortbench: ")

	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, opts, os.Stdout, log.Default())
	stop()
	if err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}
}
