// Package tensor provides the dense matrix type consumed by the symbolic
// differentiation engine.
package tensor

import "math"

// Float is a constraint for supported matrix element types.
// Elements must support exp, so only floating point types are allowed.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for matrices.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DataTypeOf infers DataType from a generic type T.
func DataTypeOf[T Float]() DataType {
	var one T = 1
	// float32 cannot represent 1 + 2^-30.
	if one+T(1.0/(1<<30)) == one {
		return Float32
	}
	return Float64
}

// Exp returns e**x computed in float64 precision.
func Exp[T Float](x T) T {
	return T(math.Exp(float64(x)))
}
