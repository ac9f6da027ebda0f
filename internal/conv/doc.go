// Package conv provides checked integer conversions between Go's int and
// the fixed-width types used by identity bitmaps and multi-indices.
//
// Every failure wraps core.ErrIndexOutOfBound: in vsmath a value that does
// not fit is always an index or position that cannot exist.
package conv
