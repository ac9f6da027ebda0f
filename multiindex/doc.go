// Package multiindex provides MultiIndex, a fixed-dimension tuple of
// unsigned integers.
//
// A MultiIndex addresses a grid node (1-based per axis) or encodes an
// axis traversal order, depending on where it is used. It enforces no
// bounds of its own; containers validate indices against their grids.
package multiindex
