package value

import (
	"fmt"

	"github.com/born-ml/symgrad/internal/tensor"
)

// Element is the scalar element contract: floating point numbers support
// arithmetic, equality, summation and exp, and FromAtom converts the
// identities into them.
type Element interface {
	tensor.Float
}

// FromAtom converts an Atom into the element type T.
func FromAtom[T Element](a Atom) T {
	if a == One {
		return 1
	}
	return 0
}

// Scalar boxes exactly one element.
type Scalar[T Element] struct {
	v T
}

// NewScalar wraps v.
func NewScalar[T Element](v T) Scalar[T] {
	return Scalar[T]{v: v}
}

// Value returns the wrapped element.
func (s Scalar[T]) Value() T { return s.v }

// Kind returns ScalarKind.
func (s Scalar[T]) Kind() Kind { return ScalarKind }

// IsZero reports whether the element equals zero.
func (s Scalar[T]) IsZero() bool { return s.v == 0 }

// String formats the element.
func (s Scalar[T]) String() string { return fmt.Sprintf("%g", s.v) }

func (s Scalar[T]) describe() string { return "scalar<" + elemName[T]() + ">" }

func (s Scalar[T]) lift(a Atom) Value { return Scalar[T]{v: FromAtom[T](a)} }

func (s Scalar[T]) zeroLike() Value { return Scalar[T]{} }

func (s Scalar[T]) binary(op Op, rhs Value) (Value, error) {
	switch r := rhs.(type) {
	case Atom:
		if op == OpDiv && r == Zero {
			return nil, fmt.Errorf("%w: %s / 0", ErrDivideByZero, s)
		}
		return s.binary(op, s.lift(r))
	case Scalar[T]:
		return Scalar[T]{v: scalarOp(op, s.v, r.v)}, nil
	case Matrix[T]:
		return scalarMatrix(op, s.v, r)
	default:
		return nil, unsupported(s, op, rhs)
	}
}

func scalarOp[T Element](op Op, a, b T) T {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul, OpElemMul:
		return a * b
	case OpDiv:
		return a / b
	}
	panic(fmt.Sprintf("value: unknown op %d", op))
}

func (s Scalar[T]) neg() (Value, error) { return Scalar[T]{v: -s.v}, nil }

func (s Scalar[T]) transpose() Value { return s }

func (s Scalar[T]) exp() (Value, error) { return Scalar[T]{v: tensor.Exp(s.v)}, nil }

func (s Scalar[T]) sum() Value { return s }

func (s Scalar[T]) equal(other Value) bool {
	o, ok := other.(Scalar[T])
	return ok && o.v == s.v
}
