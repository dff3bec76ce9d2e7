package nn

import (
	"github.com/born-ml/symgrad/internal/autodiff"
	"github.com/born-ml/symgrad/internal/value"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output expression becomes the next module's input.
//
// Example:
//
//	model := nn.NewSequential[float32](
//	    nn.NewLinear[float32]("fc1", 784, 32, rng),
//	    nn.NewSigmoid[float32](),
//	    nn.NewLinear[float32]("fc2", 32, 10, rng),
//	)
//
//	output := model.Forward(input)
type Sequential[T value.Element] struct {
	modules []Module[T]
}

// NewSequential creates a new Sequential container.
func NewSequential[T value.Element](modules ...Module[T]) *Sequential[T] {
	return &Sequential[T]{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential[T]) Forward(input autodiff.Expr) autodiff.Expr {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters returns the parameters of all modules in order.
func (s *Sequential[T]) Parameters() []*Parameter[T] {
	var params []*Parameter[T]
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Len returns the number of modules.
func (s *Sequential[T]) Len() int {
	return len(s.modules)
}
