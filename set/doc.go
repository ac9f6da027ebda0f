// Package set provides Set, a deduplicating collection of equal-dimension
// vectors with stable member identities, and the set algebra over it.
//
// # Membership
//
// Two comparisons are in play. Insert rejects v when some member m has
// norm(|v-m|, kind) <= tol. Lookups (FindFirst, RemoveMatching and the
// algebra) match when norm(v-m, kind) < tol. The two differ only at the
// boundary and, for the Chebyshev norm, in the sign handling of the
// difference.
//
// # Identities and slots
//
// Members occupy contiguous slots 0..Size()-1 in insertion order. Each member
// also receives an identity (core.ID) when inserted. Identities strictly
// increase over the lifetime of a set and are never reused, while slots are
// reassigned whenever a member before them is removed.
//
// # Iteration
//
// An Iterator remembers the identity of its member and finds the member's
// current slot through the set's control block on every call:
//
//	it, err := s.Begin()
//	if err != nil {
//	    return err
//	}
//	for it.Valid() {
//	    v, _ := it.VectorCopy()
//	    fmt.Println(v.Data())
//	    _ = it.Next()
//	}
//
// Removing other members does not disturb an iterator. Removing its own
// member, stepping past either end, or closing the set makes it invalid and
// its calls fail with core.ErrIndexOutOfBound.
//
// A Set is not safe for concurrent use.
package set
