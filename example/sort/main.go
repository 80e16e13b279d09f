// Command sort runs every sorting algorithm in the module over the same
// input and logs per-algorithm wall time. The input is either generated
// (size, seed and distribution flags) or read from a JSON file holding a
// bare array of numbers.
//
// This is a demo of the APIs, not a benchmark harness; use `go test -bench`
// for measurements.
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/ecloudclub/sortkit/datax"
	"github.com/ecloudclub/sortkit/heapx"
	"github.com/ecloudclub/sortkit/listx"
	"github.com/ecloudclub/sortkit/sortx"
)

func main() {
	var (
		size = flag.Int("n", 1000, "number of elements to generate")
		seed = flag.Uint64("seed", 42, "generator seed")
		dist = flag.String("dist", "random", "distribution: random, sorted, reversed, duplicates")
		file = flag.String("file", "", "JSON array file to sort instead of generated data")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	input, err := loadInput(*file, *size, *seed, *dist)
	if err != nil {
		logger.Fatal("load input", zap.Error(err))
	}

	runs := []struct {
		name string
		sort func([]int)
	}{
		{"bubble", sortx.Bubble[int]},
		{"selection", sortx.Selection[int]},
		{"insertion", sortx.Insertion[int]},
		{"quicksort", sortx.Quick[int]},
		{"heapsort", heapx.Sort[int]},
	}
	for _, r := range runs {
		buf := make([]int, len(input))
		copy(buf, input)

		start := time.Now()
		r.sort(buf)
		elapsed := time.Since(start)

		if !slices.IsSorted(buf) {
			logger.Fatal("result not sorted", zap.String("algorithm", r.name))
		}
		logger.Info("sorted",
			zap.String("algorithm", r.name),
			zap.Int("n", len(buf)),
			zap.Duration("elapsed", elapsed))
	}

	l := listx.FromSlice(input)
	start := time.Now()
	listx.BubbleSort(l)
	elapsed := time.Since(start)

	if !slices.IsSorted(l.Values()) {
		logger.Fatal("result not sorted", zap.String("algorithm", "list-bubble"))
	}
	logger.Info("sorted",
		zap.String("algorithm", "list-bubble"),
		zap.Int("n", l.Len()),
		zap.Duration("elapsed", elapsed))
}

func loadInput(file string, n int, seed uint64, dist string) ([]int, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		var vals []int
		if err := sonic.Unmarshal(data, &vals); err != nil {
			return nil, fmt.Errorf("sortkit: decode %s: %w", file, err)
		}
		return vals, nil
	}

	opts := []datax.Option{datax.WithSeed(seed)}
	switch dist {
	case "random":
	case "sorted":
		opts = append(opts, datax.WithSorted())
	case "reversed":
		opts = append(opts, datax.WithReversed())
	case "duplicates":
		opts = append(opts, datax.WithDuplicates(8))
	default:
		return nil, fmt.Errorf("sortkit: unknown distribution %q", dist)
	}
	return datax.Ints(n, opts...), nil
}
