package value

import (
	"fmt"

	"github.com/born-ml/symgrad/internal/tensor"
)

// ToScalar extracts a single element of type T from v.
// Atoms convert with FromAtom, structural zeros yield 0, 1x1 matrices yield
// their only element.
func ToScalar[T Element](v Value) (T, error) {
	switch x := v.(type) {
	case Atom:
		return FromAtom[T](x), nil
	case Scalar[T]:
		return x.v, nil
	case Matrix[T]:
		if x.m == nil {
			return 0, nil
		}
		if x.m.NumElements() == 1 {
			return x.m.Data()[0], nil
		}
		return 0, &tensor.ShapeError{Op: "to_scalar", Left: tensor.Shape{1, 1}, Right: x.m.Shape()}
	}
	return 0, fmt.Errorf("%w: %s as %s", ErrUnsupportedCombination, describe(v), elemName[T]())
}

// ToMatrix materialises v as a dense matrix of the given shape.
// Atoms and scalars are broadcast, structural zeros become zero-filled and
// dense matrices must already have the requested shape.
func ToMatrix[T Element](v Value, shape tensor.Shape) (*tensor.Matrix[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case Atom:
		return tensor.Full[T](shape, FromAtom[T](x)), nil
	case Scalar[T]:
		return tensor.Full[T](shape, x.v), nil
	case Matrix[T]:
		if x.m == nil {
			return tensor.Zeros[T](shape), nil
		}
		if !x.m.Shape().Equal(shape) {
			return nil, &tensor.ShapeError{Op: "to_matrix", Left: shape, Right: x.m.Shape()}
		}
		return x.m, nil
	}
	return nil, fmt.Errorf("%w: %s as matrix<%s>", ErrUnsupportedCombination, describe(v), elemName[T]())
}
