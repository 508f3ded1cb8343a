// Package rng provides the seedable random source used by level generation and
// object handling. Every draw goes through a Rand so that a fixed seed
// reproduces a level exactly.
package rng

import (
	"math"
	"math/rand"
)

// Rand wraps a seeded math/rand source with the integer helpers the game uses.
type Rand struct {
	r    *rand.Rand
	seed int64
}

// New returns a Rand seeded with seed.
func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed resets the source so the next draws repeat the sequence for seed.
func (r *Rand) Seed(seed int64) {
	r.r = rand.New(rand.NewSource(seed))
	r.seed = seed
}

// CurrentSeed returns the seed last passed to New or Seed.
func (r *Rand) CurrentSeed() int64 {
	return r.seed
}

// Int0 returns a uniform value in [0, n). It returns 0 when n <= 0.
func (r *Rand) Int0(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.Intn(n)
}

// Int1 returns a uniform value in [1, n]. It returns 1 when n <= 1.
func (r *Rand) Int1(n int) int {
	if n <= 1 {
		return 1
	}
	return r.r.Intn(n) + 1
}

// Range returns a uniform value in [lo, hi].
func (r *Rand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Intn(hi-lo+1)
}

// Spread returns a uniform value in [a-d, a+d].
func (r *Rand) Spread(a, d int) int {
	return r.Range(a-d, a+d)
}

// OneIn reports true with probability 1/n.
func (r *Rand) OneIn(n int) bool {
	return r.Int0(n) == 0
}

// Percent reports true with probability p/100.
func (r *Rand) Percent(p int) bool {
	return r.Int0(100) < p
}

// Normal returns a normally distributed integer with the given mean and
// standard deviation. A deviation below one returns the mean.
func (r *Rand) Normal(mean, stand int) int {
	if stand < 1 {
		return mean
	}
	return mean + int(math.Round(r.r.NormFloat64()*float64(stand)))
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.r.Intn(i + 1)
		swap(i, j)
	}
}

// Int63 returns a non-negative 63-bit value, used to derive sub-seeds.
func (r *Rand) Int63() int64 {
	return r.r.Int63()
}
