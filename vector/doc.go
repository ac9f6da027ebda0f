// Package vector provides Vector, a dense fixed-dimension float64 tuple,
// and the free functions combining two vectors.
//
// A Vector owns its coordinates: constructors copy their input, accessors
// return copies and Clone never shares storage.
//
//	a, _ := vector.New([]float64{1, 5.5, 6, 8.5})
//	b, _ := vector.New([]float64{5, 3, 9, 7})
//	dot, _ := vector.Dot(a, b)         // 135
//	l1, _ := a.Norm(distance.L1)       // 21
//	same := vector.Equals(a, b, distance.L2, 1e-9)
package vector
