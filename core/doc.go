// Package core holds the types shared by every vsmath package: the closed
// result-code taxonomy, the structured logger used to report failures and
// the identity type of set elements.
//
// # Errors
//
// Every failure returned by vsmath wraps exactly one sentinel error, so callers
// can branch with errors.Is or recover the numeric code:
//
//	if err := s.Insert(v, distance.L2, 1e-9); errors.Is(err, core.ErrVectorAlreadyExists) {
//	    // duplicate, ignore
//	}
//	code := core.CodeOf(err) // core.VectorAlreadyExists
//
// # Logging
//
// Failures are reported through an injected *Logger at the point where they
// are detected. A nil *Logger discards everything.
//
//	logger := core.NewTextLogger(slog.LevelWarn)
//	v, err := vector.New([]float64{1, 2}, vector.WithLogger(logger))
package core
