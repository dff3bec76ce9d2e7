// Package nn implements neural network modules on top of symbolic
// expressions.
//
// This package provides building blocks for constructing models:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable matrix bound to a Symbol name
//   - Linear: Fully connected layer y = W·x + b
//   - Activations: Sigmoid, Tanh, Softmax
//   - Loss helpers: MSE and its seed 2(y - target)
//   - Sequential: Container for stacking layers
//
// Inputs are column vectors: a layer with n inputs consumes an n×1 matrix.
// Forward builds an expression; nothing is computed until it is evaluated.
package nn

import (
	"github.com/born-ml/symgrad/internal/autodiff"
	"github.com/born-ml/symgrad/internal/value"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Build the output expression from an input expression
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build larger models:
//
//	model := nn.NewSequential[float32](
//	    nn.NewLinear[float32]("fc1", 784, 32, rng),
//	    nn.NewSigmoid[float32](),
//	    nn.NewLinear[float32]("fc2", 32, 10, rng),
//	)
type Module[T value.Element] interface {
	// Forward builds the output expression for input.
	Forward(input autodiff.Expr) autodiff.Expr

	// Parameters returns all trainable parameters of this module.
	// Returns an empty slice for modules without trainable parameters.
	Parameters() []*Parameter[T]
}
