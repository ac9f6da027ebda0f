package core

// ID is the stable identity of an element stored in a set.
// Identities are handed out in strictly increasing order and are never
// reused, even after the element they named has been removed.
type ID uint32

// MaxID is the largest identity a set can hand out.
const MaxID = ^ID(0)
