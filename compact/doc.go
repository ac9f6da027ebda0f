// Package compact provides Compact, an axis-aligned box discretized by a
// per-axis grid of nodes, and an iterator that enumerates the nodes.
//
// Grid positions are multiindex.MultiIndex values, 1-based on every axis.
// With left=[0,0], right=[5,5] and grid=[6,6], position [1,1] is the point
// [0,0], [3,3] is [2,2] and [6,6] is [5,5].
//
// # Enumeration
//
// An Iterator advances like an odometer. The bypass order passed to Begin
// lists the axes from fastest to slowest varying:
//
//	order, _ := multiindex.New([]uint64{1, 0}) // axis 1 turns fastest
//	it, err := c.Begin(order)
//	if err != nil {
//	    return err
//	}
//	for it.Valid() {
//	    p, _ := it.VectorCopy()
//	    fmt.Println(it.Index(), p.Data())
//	    _ = it.Next()
//	}
//
// Every permutation visits the same product-of-grid nodes; only the order
// differs.
package compact
