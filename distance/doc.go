// Package distance provides the norm kinds and the raw float64 kernels
// behind vector comparison.
//
// # Supported Norms
//
//   - L1: sum of absolute coordinates
//   - L2: Euclidean length
//   - Chebyshev: running maximum of the raw coordinate values (see ChebyshevNorm)
//
// # Usage
//
//	n, _ := distance.Of(distance.L2, []float64{3, 4})             // 5
//	d, _ := distance.Between(distance.L1, a, b)                    // norm(a-b)
//	s, _ := distance.Separation(distance.Chebyshev, a, b)          // norm(|a-b|)
//
// Kernels assume equal-length inputs; dimension checks belong to callers.
package distance
