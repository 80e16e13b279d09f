package datax

import (
	"math/rand/v2"
	"slices"
)

// config collects the generation knobs. Set it through the With* options.
type config struct {
	seed       uint64
	sorted     bool
	reversed   bool
	duplicates int
}

// Option mutates the generation config.
type Option func(c *config)

// WithSeed fixes the generator seed. The same seed always yields the same
// dataset, which keeps tests and benchmarks reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithSorted arranges the generated values in ascending order.
func WithSorted() Option {
	return func(c *config) {
		c.sorted = true
	}
}

// WithReversed arranges the generated values in descending order.
func WithReversed() Option {
	return func(c *config) {
		c.reversed = true
	}
}

// WithDuplicates draws every value from k distinct candidates, so the
// dataset is duplicate-heavy. k < 1 is treated as 1.
func WithDuplicates(k int) Option {
	return func(c *config) {
		if k < 1 {
			k = 1
		}
		c.duplicates = k
	}
}

func apply(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Ints generates n ints according to opts. By default the values are
// uniform in [0, 65536) under a fixed zero seed.
func Ints(n int, opts ...Option) []int {
	c := apply(opts)
	rng := rand.New(rand.NewPCG(c.seed, c.seed))

	out := make([]int, n)
	for i := range out {
		if c.duplicates > 0 {
			out[i] = rng.IntN(c.duplicates)
		} else {
			out[i] = rng.IntN(1 << 16)
		}
	}
	arrange(out, c)
	return out
}

// Bytes generates n bytes according to opts, uniform over the full byte
// range unless WithDuplicates narrows it.
func Bytes(n int, opts ...Option) []byte {
	c := apply(opts)
	rng := rand.New(rand.NewPCG(c.seed, c.seed))

	limit := 256
	if c.duplicates > 0 && c.duplicates < limit {
		limit = c.duplicates
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.IntN(limit))
	}
	arrange(out, c)
	return out
}

func arrange[E int | byte](out []E, c config) {
	if c.sorted || c.reversed {
		slices.Sort(out)
	}
	if c.reversed {
		slices.Reverse(out)
	}
}
