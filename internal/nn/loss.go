package nn

import (
	"fmt"

	"github.com/born-ml/symgrad/internal/autodiff"
	"github.com/born-ml/symgrad/internal/tensor"
	"github.com/born-ml/symgrad/internal/value"
)

// MSE computes the mean squared error between predictions and targets.
//
// Loss = mean((predictions - targets)²)
func MSE[T value.Element](predictions, targets *tensor.Matrix[T]) (T, error) {
	diff, err := tensor.Sub(predictions, targets)
	if err != nil {
		return 0, fmt.Errorf("mse: %w", err)
	}
	sq, err := tensor.Mul(diff, diff)
	if err != nil {
		return 0, fmt.Errorf("mse: %w", err)
	}
	return tensor.Sum(sq) / T(sq.NumElements()), nil
}

// MSESeed returns 2(predictions - targets), the derivative of the squared
// error with respect to the predictions. It is used as the seed when
// differentiating the model output.
func MSESeed[T value.Element](predictions, targets *tensor.Matrix[T]) (*tensor.Matrix[T], error) {
	diff, err := tensor.Sub(predictions, targets)
	if err != nil {
		return nil, fmt.Errorf("mse seed: %w", err)
	}
	return tensor.Scale(diff, 2), nil
}

// Argmax evaluates y as a column of n scores and returns the index of the
// largest one.
func Argmax[T value.Element](y autodiff.Expr, n int) (int, error) {
	m, err := autodiff.EvalMatrix[T](y, tensor.Shape{n, 1})
	if err != nil {
		return 0, err
	}
	return m.Argmax(), nil
}

// Backward differentiates out with the same seed for every parameter and
// evaluates the derivatives into matrices shaped like the parameters.
// Structural zeros are materialised as zero matrices.
func Backward[T value.Element](out, seed autodiff.Expr, params []*Parameter[T]) (map[string]*tensor.Matrix[T], error) {
	seeds := make([]autodiff.Seed, len(params))
	for i, p := range params {
		seeds[i] = autodiff.Seed{Name: p.Name(), Seed: seed}
	}

	exprs, err := autodiff.Gradients(out, seeds...)
	if err != nil {
		return nil, err
	}

	grads := make(map[string]*tensor.Matrix[T], len(params))
	for _, p := range params {
		g, err := autodiff.EvalMatrix[T](exprs[p.Name()], p.Shape())
		if err != nil {
			return nil, fmt.Errorf("gradient of %q: %w", p.Name(), err)
		}
		grads[p.Name()] = g
	}
	return grads, nil
}
