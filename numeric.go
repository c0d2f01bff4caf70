package hirschberg

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the bounded parametric type a score element must satisfy: the
// driver only ever adds two score cells and compares two score cells. A
// single generic driver instantiated over this constraint stands in for
// what would otherwise be a family of near-identical per-type drivers.
//
// Number unions the signed/unsigned integer kinds and both float kinds.
type Number interface {
	constraints.Integer | constraints.Float
}

// approxEqual reports whether a and b are close enough to call a tie.
// Exact equality for integer types; an absolute-tolerance comparison for
// floats, since summing two floating-point score cells can land a fraction
// of an ULP off an exact tie.
func approxEqual[T Number](a, b T) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) <= numberEpsilon[T]()
}

// numberEpsilon returns the tolerance used by approxEqual. Integer types are
// exact, so their epsilon is 0; float32/float64 get a fixed absolute
// tolerance (1e-5 and 1e-9) to absorb summation error from the two score
// rows added cell-wise in the split step.
func numberEpsilon[T Number]() float64 {
	var z T
	switch any(z).(type) {
	case float32:
		return 1e-5
	case float64:
		return 1e-9
	default:
		return 0
	}
}

// Metric selects how the driver compares combined forward+reverse score
// cells when choosing a split column.
type Metric uint8

const (
	// Similarity metrics maximize the combined score; the initial best is
	// the type's zero value and "improves" means strictly greater.
	Similarity Metric = iota
	// Distance metrics minimize the combined score; the initial best is
	// the type's maximum representable value and "improves" means
	// strictly less.
	Distance
)

// String implements fmt.Stringer for diagnostic output.
func (m Metric) String() string {
	switch m {
	case Similarity:
		return "similarity"
	case Distance:
		return "distance"
	default:
		return "unknown"
	}
}

// initialBest returns the seed accumulator for the split column's linear
// scan: zero for Similarity, the type's maximum value for Distance.
func initialBest[T Number](m Metric) T {
	if m == Similarity {
		return 0
	}
	return maxValue[T]()
}

// improves reports whether candidate improves on best under m: strictly
// greater for Similarity, strictly less for Distance.
func improves[T Number](m Metric, candidate, best T) bool {
	if m == Similarity {
		return candidate > best
	}
	return candidate < best
}

// maxValue returns the maximum representable value of T, used as the
// Distance metric's initial accumulator.
func maxValue[T Number]() T {
	var z T
	// v is the zero value of the case's concrete type, so v + constant is a
	// non-constant value of that type and converts to T; a bare constant
	// would have to fit every type in Number and does not compile.
	switch v := any(z).(type) {
	case float32:
		return T(v + math.MaxFloat32)
	case float64:
		return T(v + math.MaxFloat64)
	case int8:
		return T(v + math.MaxInt8)
	case int16:
		return T(v + math.MaxInt16)
	case int32:
		return T(v + math.MaxInt32)
	case int64:
		return T(v + math.MaxInt64)
	case int:
		return T(v + math.MaxInt)
	case uint8:
		return T(v + math.MaxUint8)
	case uint16:
		return T(v + math.MaxUint16)
	case uint32:
		return T(v + math.MaxUint32)
	case uint64:
		return T(v + math.MaxUint64)
	case uint:
		return T(v + math.MaxUint)
	default:
		// The switch matches exact types only: uintptr and defined types
		// with a numeric underlying type land here and get the zero value.
		return z
	}
}
