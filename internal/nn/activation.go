package nn

import (
	"github.com/born-ml/symgrad/internal/autodiff"
	"github.com/born-ml/symgrad/internal/value"
)

// Sigmoid applies 1 / (1 + exp(-x)) element-wise.
type Sigmoid[T value.Element] struct{}

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid[T value.Element]() *Sigmoid[T] {
	return &Sigmoid[T]{}
}

// Forward builds the sigmoid expression.
func (s *Sigmoid[T]) Forward(input autodiff.Expr) autodiff.Expr {
	one := autodiff.Scalar(T(1))
	return one.Div(one.Add(input.Neg().Exp()))
}

// Parameters returns an empty slice.
func (s *Sigmoid[T]) Parameters() []*Parameter[T] {
	return []*Parameter[T]{}
}

// Tanh applies (exp(x) - exp(-x)) / (exp(x) + exp(-x)) element-wise.
type Tanh[T value.Element] struct{}

// NewTanh creates a new Tanh activation.
func NewTanh[T value.Element]() *Tanh[T] {
	return &Tanh[T]{}
}

// Forward builds the tanh expression.
func (t *Tanh[T]) Forward(input autodiff.Expr) autodiff.Expr {
	pos := input.Exp()
	neg := input.Neg().Exp()
	return pos.Sub(neg).Div(pos.Add(neg))
}

// Parameters returns an empty slice.
func (t *Tanh[T]) Parameters() []*Parameter[T] {
	return []*Parameter[T]{}
}

// Softmax normalizes exp(x) by its sum, turning a column of scores into
// probabilities.
type Softmax[T value.Element] struct{}

// NewSoftmax creates a new Softmax activation.
func NewSoftmax[T value.Element]() *Softmax[T] {
	return &Softmax[T]{}
}

// Forward builds exp(x) / sum(exp(x)).
func (s *Softmax[T]) Forward(input autodiff.Expr) autodiff.Expr {
	e := input.Exp()
	return e.Div(e.Sum())
}

// Parameters returns an empty slice.
func (s *Softmax[T]) Parameters() []*Parameter[T] {
	return []*Parameter[T]{}
}
