package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"reflect"
	"strings"
	"testing"

	"sortbench/internal/bench"
	"sortbench/internal/sorting"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("sortbench", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(newFlagSet(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(opts.cfg, bench.DefaultConfig()) {
		t.Errorf("no-argument config = %+v, want %+v", opts.cfg, bench.DefaultConfig())
	}
	if opts.verbose {
		t.Error("verbose on by default")
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	opts, err := parseFlags(newFlagSet(), []string{
		"-sizes", "5, 50", "-algorithms", "radix,quick", "-min", "-3", "-max", "3",
		"-seed", "9", "-verify", "-v",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := bench.Config{
		Sizes:      []int{5, 50},
		Algorithms: []string{"radix", "quick"},
		Min:        -3,
		Max:        3,
		Seed:       9,
		Verify:     true,
	}
	if !reflect.DeepEqual(opts.cfg, want) {
		t.Errorf("config = %+v, want %+v", opts.cfg, want)
	}
	if !opts.verbose {
		t.Error("-v not applied")
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown algorithm", []string{"-algorithms", "heap"}, sorting.ErrUnknownAlgorithm},
		{"zero size", []string{"-sizes", "0"}, bench.ErrInvalidConfig},
		{"empty range", []string{"-min", "1", "-max", "1"}, bench.ErrInvalidConfig},
		{"overflowing range", []string{"-min", "-4611686018427387904", "-max", "4611686018427387904"}, bench.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(newFlagSet(), tt.args); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := parseFlags(newFlagSet(), []string{"-sizes", "ten"}); err == nil {
		t.Error("non-numeric size accepted")
	}
	if _, err := parseFlags(newFlagSet(), []string{"-bogus"}); err == nil {
		t.Error("unknown flag accepted")
	}
}

func TestRunWritesTable(t *testing.T) {
	opts := options{cfg: bench.DefaultConfig(), verbose: true}
	opts.cfg.Sizes = []int{10, 100}
	opts.cfg.Seed = 1
	opts.cfg.Verify = true

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), opts, &stdout, log.New(&stderr, "", 0)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 2+len(opts.cfg.Algorithms) {
		t.Fatalf("got %d lines:\n%s", len(lines), stdout.String())
	}
	if !strings.HasPrefix(lines[0], "Алгоритм") {
		t.Errorf("header = %q", lines[0])
	}
	for _, row := range lines[2:] {
		if strings.Count(row, "мс |") != 2 {
			t.Errorf("row %q does not have two timing cells", row)
		}
	}
	if stderr.Len() == 0 {
		t.Error("verbose run logged nothing")
	}
}
