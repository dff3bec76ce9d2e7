package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/symgrad/internal/autodiff"
	"github.com/born-ml/symgrad/internal/tensor"
	"github.com/born-ml/symgrad/internal/value"
)

// Linear implements a fully connected (dense) layer.
//
// Builds the expression: y = W·x + b
// where:
//   - x is the input column with shape [in_features, 1]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias column with shape [out_features, 1]
//   - y is the output column with shape [out_features, 1]
//
// Weights are initialized using Xavier/Glorot initialization.
// Biases are initialized to zeros.
//
// Example:
//
//	layer := nn.NewLinear[float32]("fc", 784, 10, rand.New(rand.NewSource(1)))
//	y := layer.Forward(autodiff.Matrix(image)) // shape: [10, 1]
type Linear[T value.Element] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[T] // [out_features, in_features]
	bias        *Parameter[T] // [out_features, 1]
}

// NewLinear creates a new Linear layer whose parameters are named
// name+".weight" and name+".bias".
func NewLinear[T value.Element](name string, inFeatures, outFeatures int, rng *rand.Rand) *Linear[T] {
	return &Linear[T]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter(name+".weight", Xavier[T](inFeatures, outFeatures, rng)),
		bias:        NewParameter(name+".bias", Zeros[T](outFeatures, 1)),
	}
}

// NewLinearFrom creates a Linear layer from existing weight and bias matrices.
func NewLinearFrom[T value.Element](name string, weight, bias *tensor.Matrix[T]) (*Linear[T], error) {
	if bias.Rows() != weight.Rows() || bias.Cols() != 1 {
		return nil, fmt.Errorf("%w: bias %s for weight %s",
			tensor.ErrShapeMismatch, bias.Shape(), weight.Shape())
	}
	return &Linear[T]{
		inFeatures:  weight.Cols(),
		outFeatures: weight.Rows(),
		weight:      NewParameter(name+".weight", weight),
		bias:        NewParameter(name+".bias", bias),
	}, nil
}

// Forward builds W·x + b.
func (l *Linear[T]) Forward(input autodiff.Expr) autodiff.Expr {
	return l.weight.Expr().Mul(input).Add(l.bias.Expr())
}

// Parameters returns [weight, bias].
func (l *Linear[T]) Parameters() []*Parameter[T] {
	return []*Parameter[T]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[T]) Weight() *Parameter[T] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[T]) Bias() *Parameter[T] {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear[T]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear[T]) OutFeatures() int {
	return l.outFeatures
}
