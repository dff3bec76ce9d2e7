package optim

import (
	"github.com/born-ml/symgrad/internal/nn"
	"github.com/born-ml/symgrad/internal/tensor"
	"github.com/born-ml/symgrad/internal/value"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(layer.Parameters(), optim.SGDConfig[float32]{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD[T value.Element] struct {
	params     []*nn.Parameter[T]
	lr         T
	momentum   T
	velocities map[string]*tensor.Matrix[T]
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig[T value.Element] struct {
	LR       T // Learning rate (default: 0.01)
	Momentum T // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD[T value.Element](params []*nn.Parameter[T], config SGDConfig[T]) *SGD[T] {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD[T]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[string]*tensor.Matrix[T]),
	}
}

// Step performs a single optimization step.
func (s *SGD[T]) Step(grads map[string]*tensor.Matrix[T]) error {
	ordered, err := lookup(s.params, grads)
	if err != nil {
		return err
	}

	for i, param := range s.params {
		grad := ordered[i]
		if grad == nil {
			// Parameter didn't appear in the expression, skip
			continue
		}

		update := grad.Data()
		if s.momentum != 0 {
			update = s.accumulate(param, grad)
		}

		data := param.Matrix().Data()
		for j := range data {
			data[j] -= s.lr * update[j]
		}
	}
	return nil
}

// accumulate updates velocity = momentum * velocity + grad and returns it.
func (s *SGD[T]) accumulate(param *nn.Parameter[T], grad *tensor.Matrix[T]) []T {
	velocity, exists := s.velocities[param.Name()]
	if !exists {
		velocity = tensor.Zeros[T](param.Shape())
		s.velocities[param.Name()] = velocity
	}

	v := velocity.Data()
	for j, g := range grad.Data() {
		v[j] = s.momentum*v[j] + g
	}
	return v
}

// GetLR returns the current learning rate.
func (s *SGD[T]) GetLR() T {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD[T]) SetLR(lr T) {
	s.lr = lr
}
