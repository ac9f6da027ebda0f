package conv

import (
	"math"

	"github.com/hupe1980/vsmath/core"
)

// IntToUint32 converts a slot or count to the uint32 domain of an identity
// bitmap.
func IntToUint32(v int) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, overflow(v, "uint32")
	}
	return uint32(v), nil
}

// Uint64ToInt converts a bitmap rank or cardinality back to int.
func Uint64ToInt(v uint64) (int, error) {
	if v > math.MaxInt {
		return 0, overflow(v, "int")
	}
	return int(v), nil
}

func overflow(v any, target string) error {
	return core.Errorf(core.ErrIndexOutOfBound, "%v does not fit in %s", v, target)
}
