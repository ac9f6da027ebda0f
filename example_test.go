package vsmath_test

import (
	"fmt"
	"log"
	"math"

	"github.com/hupe1980/vsmath"
	"github.com/hupe1980/vsmath/distance"
	"github.com/hupe1980/vsmath/set"
)

// Example_set demonstrates deduplicating insertion and stable identities.
func Example_set() {
	tk := vsmath.New()

	s, err := tk.SetOf([][]float64{
		{0, 0},
		{1, 0},
		{0, 0.05}, // within 0.1 of {0, 0}: dropped
		{0, 1},
	}, distance.L2, 0.1)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	if err := s.RemoveAt(0); err != nil {
		log.Fatal(err)
	}

	for id, row := range s.All() {
		fmt.Println(id, row)
	}
	// Output:
	// 1 [1 0]
	// 2 [0 1]
}

// Example_algebra demonstrates set algebra under a tolerance.
func Example_algebra() {
	tk := vsmath.New()

	a, _ := tk.SetOf([][]float64{{0, 0}, {1, 1}}, distance.L1, 0.5)
	b, _ := tk.SetOf([][]float64{{1, 1.1}, {2, 2}}, distance.L1, 0.5)

	u, err := set.Union(a, b, distance.L1, 0.5)
	if err != nil {
		log.Fatal(err)
	}
	i, err := set.Intersection(a, b, distance.L1, 0.5)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(u.Size(), i.Size())
	fmt.Println(set.Subset(i, u, distance.L1, 0.5))
	// Output:
	// 3 1
	// true
}

// Example_compact demonstrates enumerating the nodes of a box.
func Example_compact() {
	tk := vsmath.New()

	c, err := tk.Box([]float64{0, 0}, []float64{1, 1}, []uint64{3, 2})
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	order, _ := tk.NewMultiIndex([]uint64{0, 1})
	it, err := c.Begin(order)
	if err != nil {
		log.Fatal(err)
	}
	for it.Valid() {
		p, _ := it.VectorCopy()
		fmt.Println(it.Index(), p.Data())
		_ = it.Next()
	}
	// Output:
	// [1 1] [0 0]
	// [2 1] [0.5 0]
	// [3 1] [1 0]
	// [1 2] [0 1]
	// [2 2] [0.5 1]
	// [3 2] [1 1]
}

// ExampleCodeOf demonstrates mapping an error back to its result code.
func ExampleCodeOf() {
	tk := vsmath.New()

	v, _ := tk.NewVector([]float64{1, 2})
	err := v.SetCoordinate(0, math.NaN())

	fmt.Println(vsmath.CodeOf(err))
	fmt.Println(v.Data())
	// Output:
	// NotANumber
	// [1 2]
}
