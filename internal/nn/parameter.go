package nn

import (
	"github.com/born-ml/symgrad/internal/autodiff"
	"github.com/born-ml/symgrad/internal/tensor"
	"github.com/born-ml/symgrad/internal/value"
)

// Parameter represents a trainable matrix in a model.
//
// In expressions a parameter appears as a Symbol carrying its name, so
// derivatives with respect to the parameter are requested by name.
// Optimizers update the matrix in place; expressions built afterwards see
// the new values.
//
// Example:
//
//	weight := nn.NewParameter("fc.weight", w)
//	y := weight.Expr().Mul(x)
type Parameter[T value.Element] struct {
	name string            // Symbol name (e.g., "fc.weight")
	data *tensor.Matrix[T] // Current values
}

// NewParameter creates a new trainable parameter.
func NewParameter[T value.Element](name string, m *tensor.Matrix[T]) *Parameter[T] {
	return &Parameter[T]{name: name, data: m}
}

// Name returns the parameter name.
func (p *Parameter[T]) Name() string {
	return p.name
}

// Matrix returns the parameter values.
func (p *Parameter[T]) Matrix() *tensor.Matrix[T] {
	return p.data
}

// Shape returns the parameter shape.
func (p *Parameter[T]) Shape() tensor.Shape {
	return p.data.Shape()
}

// Expr returns the parameter as a named variable.
func (p *Parameter[T]) Expr() autodiff.Expr {
	return autodiff.MatrixVar(p.data, p.name)
}
