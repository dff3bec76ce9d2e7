package optim

import (
	"math"

	"github.com/born-ml/symgrad/internal/nn"
	"github.com/born-ml/symgrad/internal/tensor"
	"github.com/born-ml/symgrad/internal/value"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam[T value.Element] struct {
	params []*nn.Parameter[T]
	lr     T
	beta1  T
	beta2  T
	eps    T
	t      int                          // Timestep for bias correction
	m      map[string]*tensor.Matrix[T] // First moment estimates
	v      map[string]*tensor.Matrix[T] // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig[T value.Element] struct {
	LR    T    // Learning rate (default: 0.001)
	Betas [2]T // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   T    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer, filling unset hyperparameters with
// the defaults LR 0.001, betas (0.9, 0.999) and eps 1e-8.
func NewAdam[T value.Element](params []*nn.Parameter[T], config AdamConfig[T]) *Adam[T] {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam[T]{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[string]*tensor.Matrix[T]),
		v:      make(map[string]*tensor.Matrix[T]),
	}
}

// Step performs a single optimization step using Adam algorithm.
func (a *Adam[T]) Step(grads map[string]*tensor.Matrix[T]) error {
	ordered, err := lookup(a.params, grads)
	if err != nil {
		return err
	}

	a.t++
	biasCorrection1 := T(1.0 - math.Pow(float64(a.beta1), float64(a.t)))
	biasCorrection2 := T(1.0 - math.Pow(float64(a.beta2), float64(a.t)))

	for i, param := range a.params {
		grad := ordered[i]
		if grad == nil {
			continue
		}

		m, ok := a.m[param.Name()]
		if !ok {
			m = tensor.Zeros[T](param.Shape())
			a.m[param.Name()] = m
		}
		v, ok := a.v[param.Name()]
		if !ok {
			v = tensor.Zeros[T](param.Shape())
			a.v[param.Name()] = v
		}

		a.update(param.Matrix().Data(), grad.Data(), m.Data(), v.Data(), biasCorrection1, biasCorrection2)
	}
	return nil
}

// update performs the Adam update for a single parameter.
func (a *Adam[T]) update(paramData, gradData, mData, vData []T, biasCorrection1, biasCorrection2 T) {
	for i := range paramData {
		g := gradData[i]

		mData[i] = a.beta1*mData[i] + (1.0-a.beta1)*g
		vData[i] = a.beta2*vData[i] + (1.0-a.beta2)*g*g

		mHat := mData[i] / biasCorrection1
		vHat := vData[i] / biasCorrection2

		paramData[i] -= a.lr * mHat / (T(math.Sqrt(float64(vHat))) + a.eps)
	}
}

// GetLR returns the current learning rate.
func (a *Adam[T]) GetLR() T {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam[T]) SetLR(lr T) {
	a.lr = lr
}
