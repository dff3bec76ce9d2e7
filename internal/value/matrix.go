package value

import (
	"fmt"

	"github.com/born-ml/symgrad/internal/tensor"
)

// Matrix is an optional dense matrix. A nil matrix is the structural zero;
// it carries a shape hint when its shape is known.
type Matrix[T Element] struct {
	m     *tensor.Matrix[T]
	shape tensor.Shape // hint, only consulted when m is nil
}

// NewMatrix wraps m. A nil m yields a structural zero of unknown shape.
func NewMatrix[T Element](m *tensor.Matrix[T]) Matrix[T] {
	return Matrix[T]{m: m}
}

// ZeroMatrix returns the structural zero with a known shape.
func ZeroMatrix[T Element](shape tensor.Shape) Matrix[T] {
	return Matrix[T]{shape: shape.Clone()}
}

// StructuralZero returns the structural zero of unknown shape.
func StructuralZero[T Element]() Matrix[T] {
	return Matrix[T]{}
}

// Matrix returns the dense matrix, or nil for the structural zero.
func (m Matrix[T]) Matrix() *tensor.Matrix[T] { return m.m }

// Shape returns the matrix shape and whether it is known.
func (m Matrix[T]) Shape() (tensor.Shape, bool) {
	if m.m != nil {
		return m.m.Shape(), true
	}
	return m.shape, m.shape != nil
}

// Materialize returns the dense matrix, allocating zeros for a structural
// zero with a known shape.
func (m Matrix[T]) Materialize() (*tensor.Matrix[T], error) {
	if m.m != nil {
		return m.m, nil
	}
	if m.shape == nil {
		return nil, ErrUnknownShape
	}
	return tensor.Zeros[T](m.shape), nil
}

// Kind returns MatrixKind.
func (m Matrix[T]) Kind() Kind { return MatrixKind }

// IsZero reports whether m is the structural zero.
func (m Matrix[T]) IsZero() bool { return m.m == nil }

func (m Matrix[T]) allZero() bool { return m.m == nil || m.m.IsAllZero() }

// String formats the matrix; the structural zero prints as 0.
func (m Matrix[T]) String() string {
	if m.m == nil {
		if m.shape != nil {
			return "0[" + m.shape.String() + "]"
		}
		return "0"
	}
	return m.m.String()
}

func (m Matrix[T]) describe() string {
	if shape, ok := m.Shape(); ok {
		return fmt.Sprintf("matrix<%s>[%s]", elemName[T](), shape)
	}
	return "matrix<" + elemName[T]() + ">"
}

func (m Matrix[T]) lift(a Atom) Value { return Scalar[T]{v: FromAtom[T](a)} }

func (m Matrix[T]) zeroLike() Value {
	shape, _ := m.Shape()
	return Matrix[T]{shape: shape}
}

func (m Matrix[T]) binary(op Op, rhs Value) (Value, error) {
	switch r := rhs.(type) {
	case Atom:
		return m.atomOp(op, r)
	case Scalar[T]:
		return matrixScalar(op, m, r.v)
	case Matrix[T]:
		return matrixMatrix(op, m, r)
	default:
		return nil, unsupported(m, op, rhs)
	}
}

func (m Matrix[T]) atomOp(op Op, a Atom) (Value, error) {
	switch op {
	case OpAdd, OpSub:
		if a == Zero {
			return m, nil
		}
	case OpMul, OpElemMul:
		if a == Zero {
			return m.zeroLike(), nil
		}
		return m, nil
	case OpDiv:
		if a == Zero {
			return nil, fmt.Errorf("%w: %s / 0", ErrDivideByZero, m.describe())
		}
		return m, nil
	}
	return matrixScalar(op, m, FromAtom[T](a))
}

// matrixMatrix applies op to two optional matrices.
func matrixMatrix[T Element](op Op, a, b Matrix[T]) (Value, error) {
	if a.m != nil && b.m != nil {
		var (
			out *tensor.Matrix[T]
			err error
		)
		switch op {
		case OpAdd:
			out, err = tensor.Add(a.m, b.m)
		case OpSub:
			out, err = tensor.Sub(a.m, b.m)
		case OpMul:
			out, err = tensor.MatMul(a.m, b.m)
		case OpElemMul:
			out, err = tensor.Mul(a.m, b.m)
		case OpDiv:
			out, err = tensor.Div(a.m, b.m)
		}
		if err != nil {
			return nil, err
		}
		return Matrix[T]{m: out}, nil
	}

	aShape, aKnown := a.Shape()
	bShape, bKnown := b.Shape()

	// A hinted zero must line up with the other operand exactly as its
	// materialised form would. Products skip the check.
	if name, elementwise := kernelNames[op]; elementwise && aKnown && bKnown && !aShape.Equal(bShape) {
		return nil, &tensor.ShapeError{Op: name, Left: aShape, Right: bShape}
	}

	switch op {
	case OpAdd:
		if a.m == nil && b.m == nil {
			return Matrix[T]{shape: firstKnown(aShape, bShape)}, nil
		}
		if a.m == nil {
			return b, nil
		}
		return a, nil
	case OpSub:
		if a.m == nil && b.m == nil {
			return Matrix[T]{shape: firstKnown(aShape, bShape)}, nil
		}
		if a.m == nil {
			return Matrix[T]{m: tensor.Neg(b.m)}, nil
		}
		return a, nil
	case OpMul:
		// Product with the structural zero skips the inner-dimension check.
		var shape tensor.Shape
		if aKnown && bKnown {
			shape = tensor.Shape{aShape.Rows(), bShape.Cols()}
		}
		return Matrix[T]{shape: shape}, nil
	case OpElemMul:
		return Matrix[T]{shape: firstKnown(aShape, bShape)}, nil
	case OpDiv:
		if b.m == nil {
			return nil, fmt.Errorf("%w: %s / %s", ErrDivideByZero, a.describe(), b.describe())
		}
		return Matrix[T]{shape: b.m.Shape()}, nil
	}
	return nil, unsupported(a, op, b)
}

// kernelNames labels shape errors for the elementwise operators.
var kernelNames = map[Op]string{
	OpAdd:     "add",
	OpSub:     "sub",
	OpElemMul: "elem_mul",
	OpDiv:     "div",
}

func firstKnown(shapes ...tensor.Shape) tensor.Shape {
	for _, s := range shapes {
		if s != nil {
			return s.Clone()
		}
	}
	return nil
}

// matrixScalar applies op with the scalar broadcast on the right.
func matrixScalar[T Element](op Op, m Matrix[T], s T) (Value, error) {
	if m.m == nil {
		switch op {
		case OpMul, OpElemMul:
			return m, nil
		case OpDiv:
			if s == 0 {
				return nil, fmt.Errorf("%w: %s / 0", ErrDivideByZero, m.describe())
			}
			return m, nil
		case OpAdd:
			return broadcastScalar(m, s), nil
		case OpSub:
			return broadcastScalar(m, -s), nil
		}
		return nil, unsupported(m, op, Scalar[T]{v: s})
	}
	switch op {
	case OpAdd:
		return Matrix[T]{m: tensor.AddScalar(m.m, s)}, nil
	case OpSub:
		return Matrix[T]{m: tensor.AddScalar(m.m, -s)}, nil
	case OpMul, OpElemMul:
		return Matrix[T]{m: tensor.Scale(m.m, s)}, nil
	case OpDiv:
		return Matrix[T]{m: tensor.Scale(m.m, 1/s)}, nil
	}
	return nil, unsupported(m, op, Scalar[T]{v: s})
}

// scalarMatrix applies op with the scalar broadcast on the left.
func scalarMatrix[T Element](op Op, s T, m Matrix[T]) (Value, error) {
	if m.m == nil {
		switch op {
		case OpMul, OpElemMul:
			return m, nil
		case OpDiv:
			return nil, fmt.Errorf("%w: %g / %s", ErrDivideByZero, s, m.describe())
		case OpAdd, OpSub:
			return broadcastScalar(m, s), nil
		}
		return nil, unsupported(Scalar[T]{v: s}, op, m)
	}
	switch op {
	case OpAdd:
		return Matrix[T]{m: tensor.AddScalar(m.m, s)}, nil
	case OpSub:
		return Matrix[T]{m: tensor.RSubScalar(s, m.m)}, nil
	case OpMul, OpElemMul:
		return Matrix[T]{m: tensor.Scale(m.m, s)}, nil
	case OpDiv:
		return Matrix[T]{m: tensor.RDivScalar(s, m.m)}, nil
	}
	return nil, unsupported(Scalar[T]{v: s}, op, m)
}

// broadcastScalar adds s to a structural zero: the result is s spread over
// the hinted shape, or the bare scalar when no shape is known.
func broadcastScalar[T Element](zero Matrix[T], s T) Value {
	if zero.shape == nil {
		return Scalar[T]{v: s}
	}
	return Matrix[T]{m: tensor.Full[T](zero.shape, s)}
}

func (m Matrix[T]) neg() (Value, error) {
	if m.m == nil {
		return m, nil
	}
	return Matrix[T]{m: tensor.Neg(m.m)}, nil
}

func (m Matrix[T]) transpose() Value {
	if m.m == nil {
		return Matrix[T]{shape: m.shape.T()}
	}
	return Matrix[T]{m: tensor.Transpose(m.m)}
}

func (m Matrix[T]) exp() (Value, error) {
	if m.m == nil {
		if m.shape == nil {
			return nil, fmt.Errorf("exp: %w", ErrUnknownShape)
		}
		return Matrix[T]{m: tensor.Ones[T](m.shape)}, nil
	}
	return Matrix[T]{m: tensor.ExpElem(m.m)}, nil
}

func (m Matrix[T]) sum() Value {
	if m.m == nil {
		return Scalar[T]{}
	}
	return Scalar[T]{v: tensor.Sum(m.m)}
}

func (m Matrix[T]) equal(other Value) bool {
	o, ok := other.(Matrix[T])
	if !ok {
		return false
	}
	if m.m == nil || o.m == nil {
		return m.allZero() && o.allZero()
	}
	return m.m.Equal(o.m)
}
