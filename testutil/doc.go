// Package testutil provides testing utilities for vsmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating float64 vectors
// and axis permutations.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformVectors(50, 3, -1, 1) // uniform [-1, 1)
//	lat := rng.LatticeVectors(50, 3, 8)     // exact small-integer coordinates
package testutil
