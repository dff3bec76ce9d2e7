// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/symgrad/autodiff"
	"github.com/born-ml/symgrad/internal/nn"
	"github.com/born-ml/symgrad/internal/value"
	"github.com/born-ml/symgrad/tensor"
)

// Linear is a fully connected layer y = W·x + b.
type Linear[T value.Element] = nn.Linear[T]

// NewLinear creates a Linear layer with Xavier-initialized weights and zero
// bias. Its parameters are named name+".weight" and name+".bias".
//
// Example:
//
//	layer := nn.NewLinear[float32]("fc", 784, 10, rng)
func NewLinear[T value.Element](name string, inFeatures, outFeatures int, rng *rand.Rand) *Linear[T] {
	return nn.NewLinear[T](name, inFeatures, outFeatures, rng)
}

// NewLinearFrom creates a Linear layer from existing weight and bias.
func NewLinearFrom[T value.Element](name string, weight, bias *tensor.Matrix[T]) (*Linear[T], error) {
	return nn.NewLinearFrom(name, weight, bias)
}

// Sigmoid applies 1 / (1 + exp(-x)) elementwise.
type Sigmoid[T value.Element] = nn.Sigmoid[T]

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid[T value.Element]() *Sigmoid[T] {
	return nn.NewSigmoid[T]()
}

// Tanh applies the hyperbolic tangent elementwise.
type Tanh[T value.Element] = nn.Tanh[T]

// NewTanh creates a Tanh activation.
func NewTanh[T value.Element]() *Tanh[T] {
	return nn.NewTanh[T]()
}

// Softmax normalizes exp(x) to sum to one.
type Softmax[T value.Element] = nn.Softmax[T]

// NewSoftmax creates a Softmax activation.
func NewSoftmax[T value.Element]() *Softmax[T] {
	return nn.NewSoftmax[T]()
}

// Sequential chains modules, feeding each output into the next.
type Sequential[T value.Element] = nn.Sequential[T]

// NewSequential creates a Sequential container.
func NewSequential[T value.Element](modules ...Module[T]) *Sequential[T] {
	return nn.NewSequential(modules...)
}

// Xavier returns a fanOut×fanIn matrix drawn uniformly from ±sqrt(6/(fanIn+fanOut)).
func Xavier[T value.Element](fanIn, fanOut int, rng *rand.Rand) *tensor.Matrix[T] {
	return nn.Xavier[T](fanIn, fanOut, rng)
}

// Zeros returns a rows×cols zero matrix.
func Zeros[T value.Element](rows, cols int) *tensor.Matrix[T] {
	return nn.Zeros[T](rows, cols)
}

// MSE returns the mean squared error between predictions and targets.
func MSE[T value.Element](predictions, targets *tensor.Matrix[T]) (T, error) {
	return nn.MSE(predictions, targets)
}

// MSESeed returns 2(predictions - targets), the seed for differentiating
// the squared error.
func MSESeed[T value.Element](predictions, targets *tensor.Matrix[T]) (*tensor.Matrix[T], error) {
	return nn.MSESeed(predictions, targets)
}

// Argmax evaluates y as an n×1 column and returns the index of its largest
// element.
func Argmax[T value.Element](y autodiff.Expr, n int) (int, error) {
	return nn.Argmax[T](y, n)
}

// Backward differentiates out with seed and evaluates the derivative for
// every parameter, keyed by parameter name.
func Backward[T value.Element](out, seed autodiff.Expr, params []*Parameter[T]) (map[string]*tensor.Matrix[T], error) {
	return nn.Backward(out, seed, params)
}
