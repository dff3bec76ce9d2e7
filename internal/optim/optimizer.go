// Package optim implements optimization algorithms for training models built
// from symbolic expressions.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Gradients are evaluated derivative matrices keyed by parameter name, as
// returned by nn.Backward.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig[float32]{LR: 0.01})
//
//	for _, sample := range samples {
//	    y := model.Forward(autodiff.Matrix(sample.Input))
//	    out, _ := autodiff.EvalMatrix[float32](y, shape)
//	    seed, _ := nn.MSESeed(out, sample.Target)
//	    grads, _ := nn.Backward(y, autodiff.Matrix(seed), model.Parameters())
//	    if err := optimizer.Step(grads); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"fmt"

	"github.com/born-ml/symgrad/internal/nn"
	"github.com/born-ml/symgrad/internal/tensor"
	"github.com/born-ml/symgrad/internal/value"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer[T value.Element] interface {
	// Step applies gradient updates to all parameters in place.
	//
	// Parameters without an entry in grads are skipped. A gradient whose
	// shape differs from its parameter is an error and nothing is updated.
	Step(grads map[string]*tensor.Matrix[T]) error

	// GetLR returns the current learning rate.
	GetLR() T

	// SetLR updates the learning rate.
	SetLR(lr T)
}

// lookup returns the gradients for params, in order, checking shapes first.
// Missing gradients are returned as nil.
func lookup[T value.Element](params []*nn.Parameter[T], grads map[string]*tensor.Matrix[T]) ([]*tensor.Matrix[T], error) {
	out := make([]*tensor.Matrix[T], len(params))
	for i, p := range params {
		g, ok := grads[p.Name()]
		if !ok || g == nil {
			continue
		}
		if !g.Shape().Equal(p.Shape()) {
			return nil, fmt.Errorf("gradient for %q: %w",
				p.Name(), &tensor.ShapeError{Op: "step", Left: p.Shape(), Right: g.Shape()})
		}
		out[i] = g
	}
	return out, nil
}
