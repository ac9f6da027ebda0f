package testutil

import (
	"math/rand"
	"sync"
)

// RNG is a seeded random source for reproducible test data.
// It is safe for concurrent use.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset rewinds the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformVectors generates num vectors of the given dimension with
// coordinates drawn uniformly from [lo, hi).
func (r *RNG) UniformVectors(num, dimensions int, lo, hi float64) [][]float64 {
	return r.vectors(num, dimensions, func() float64 {
		return lo + r.rand.Float64()*(hi-lo)
	})
}

// LatticeVectors generates vectors whose coordinates are small integers in
// [0, side). Sums and differences of such vectors are exact, and distinct
// vectors are at least 1 apart in every norm.
func (r *RNG) LatticeVectors(num, dimensions, side int) [][]float64 {
	return r.vectors(num, dimensions, func() float64 {
		return float64(r.rand.Intn(side))
	})
}

// Perm returns a random permutation of 0..n-1.
func (r *RNG) Perm(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, n)
	for i, v := range r.rand.Perm(n) {
		out[i] = uint64(v)
	}
	return out
}

// vectors carves num rows out of one backing array. Every row is capped
// so appending to it never spills into its neighbour.
func (r *RNG) vectors(num, dimensions int, next func() float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	rows := make([][]float64, num)
	for i := range rows {
		row := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range row {
			row[j] = next()
		}
		rows[i] = row
	}
	return rows
}
