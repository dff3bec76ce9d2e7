// Package value implements the runtime values produced by evaluating
// expressions: the Atom identities, boxed scalars and optional matrices.
//
// Arithmetic is dispatched at runtime across value kinds:
//
//	Atom    ∘ Atom    → Atom (stays within {Zero, One})
//	Atom    ∘ Scalar  → Scalar (Atom converted with FromAtom)
//	Scalar  ∘ Matrix  → Matrix (scalar broadcast over every element)
//	Matrix  ∘ Matrix  → Matrix (nil is the structural zero)
//
// A nil matrix is the structural zero of whatever shape is contextually
// required. It may carry a shape hint so that it can be materialised when an
// operation cannot be short-circuited (e.g. exp of a zero matrix).
package value

import (
	"fmt"

	"github.com/born-ml/symgrad/internal/tensor"
)

// Kind identifies the representation of a Value.
type Kind int

// Value kinds.
const (
	AtomKind Kind = iota
	ScalarKind
	MatrixKind
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case AtomKind:
		return "atom"
	case ScalarKind:
		return "scalar"
	case MatrixKind:
		return "matrix"
	default:
		return "unknown"
	}
}

// Op identifies a binary arithmetic operation.
type Op int

// Binary operations.
const (
	OpAdd Op = iota
	OpSub
	OpMul     // matrix product (scalar product for scalars)
	OpElemMul // Hadamard product
	OpDiv     // elementwise quotient
)

// String returns the operator symbol.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpElemMul:
		return ".*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Value is the result of evaluating an expression.
//
// The set of implementations is closed: Atom, Scalar[T] and Matrix[T].
type Value interface {
	Kind() Kind
	// IsZero reports whether the value is the additive identity
	// (Atom Zero, a zero scalar, or a structural-zero matrix).
	IsZero() bool
	String() string

	binary(op Op, rhs Value) (Value, error)
	neg() (Value, error)
	transpose() Value
	exp() (Value, error)
	sum() Value
	equal(other Value) bool
}

// typed is implemented by values that carry an element type.
type typed interface {
	Value
	// lift converts an atom into a scalar of the receiver's element type.
	lift(a Atom) Value
	// zeroLike returns the structural zero of the receiver's kind and shape.
	zeroLike() Value
	describe() string
}

// Add returns a + b.
func Add(a, b Value) (Value, error) { return a.binary(OpAdd, b) }

// Sub returns a - b.
func Sub(a, b Value) (Value, error) { return a.binary(OpSub, b) }

// Mul returns the matrix (or scalar) product a * b.
func Mul(a, b Value) (Value, error) { return a.binary(OpMul, b) }

// ElemMul returns the elementwise product a .* b.
func ElemMul(a, b Value) (Value, error) { return a.binary(OpElemMul, b) }

// Div returns the elementwise quotient a / b.
func Div(a, b Value) (Value, error) { return a.binary(OpDiv, b) }

// Neg returns -v.
func Neg(v Value) (Value, error) { return v.neg() }

// Transpose returns vᵀ. Scalars and atoms are their own transpose.
func Transpose(v Value) Value { return v.transpose() }

// Exp returns the elementwise exponential of v.
func Exp(v Value) (Value, error) { return v.exp() }

// Sum reduces v to a scalar. Scalars and atoms are returned unchanged.
func Sum(v Value) Value { return v.sum() }

// Equal reports whether a and b denote the same value.
//
// Structural zeros are transparent: a nil matrix equals an all-zero matrix
// and Atom Zero equals a zero scalar. Atom One equals a scalar one.
func Equal(a, b Value) bool {
	if isValueZero(a) || isValueZero(b) {
		return isValueZero(a) && isValueZero(b)
	}
	if at, ok := a.(Atom); ok {
		return atomEqual(at, b)
	}
	if bt, ok := b.(Atom); ok {
		return atomEqual(bt, a)
	}
	return a.equal(b)
}

func atomEqual(a Atom, v Value) bool {
	if other, ok := v.(Atom); ok {
		return a == other
	}
	t, ok := v.(typed)
	if !ok {
		return false
	}
	return t.lift(a).equal(v)
}

func isValueZero(v Value) bool {
	if v.IsZero() {
		return true
	}
	if m, ok := v.(interface{ allZero() bool }); ok {
		return m.allZero()
	}
	return false
}

func describe(v Value) string {
	if t, ok := v.(typed); ok {
		return t.describe()
	}
	return v.Kind().String()
}

func unsupported(lhs Value, op Op, rhs Value) error {
	return fmt.Errorf("%w: %s %s %s", ErrUnsupportedCombination, describe(lhs), op, describe(rhs))
}

func elemName[T tensor.Float]() string {
	return tensor.DataTypeOf[T]().String()
}
