// Package vsmath provides small, composable numerics containers for Go.
//
//   - vector.Vector: dense fixed-dimension float64 vector that never holds NaN or Inf
//   - multiindex.MultiIndex: tuple of unsigned axis positions
//   - set.Set: deduplicating collection of same-dimension vectors with stable identities
//   - compact.Compact: axis-aligned box with a per-axis grid of nodes
//
// Sets and compacts hand out iterators that reach their container through a
// control block. Mutating a set never invalidates an iterator on another
// member, and closing a container makes its iterators fail cleanly instead
// of reading freed storage.
//
// # Quick Start
//
//	tk := vsmath.New(
//	    vsmath.WithLogLevel(slog.LevelWarn),
//	    vsmath.WithMemoryLimit(64<<20),
//	)
//
//	s := tk.NewSet()
//	defer s.Close()
//
//	v, _ := tk.NewVector([]float64{1, 2, 3})
//	if err := s.Insert(v, distance.L2, 1e-9); err != nil {
//	    // errors.Is(err, vsmath.ErrVectorAlreadyExists) for duplicates
//	}
//
// # Errors
//
// Every failure is a Go error that matches exactly one sentinel (ErrNullPointer,
// ErrMismatchingDimensions, ...) and maps to a Code via CodeOf. Failed calls leave
// their receiver unchanged. Each failure is also logged once, with its code,
// severity and the function that detected it, to the configured Logger.
package vsmath
