// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/symgrad/internal/nn"
	"github.com/born-ml/symgrad/internal/optim"
	"github.com/born-ml/symgrad/internal/value"
)

// Optimizer updates parameters in place from named gradients.
type Optimizer[T value.Element] = optim.Optimizer[T]

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD[T value.Element] = optim.SGD[T]

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig[T value.Element] = optim.SGDConfig[T]

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	model := nn.NewLinear[float32]("fc", 784, 10, rng)
//	optimizer := optim.NewSGD(
//	    model.Parameters(),
//	    optim.SGDConfig[float32]{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	    },
//	)
func NewSGD[T value.Element](params []*nn.Parameter[T], config SGDConfig[T]) *SGD[T] {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam[T value.Element] = optim.Adam[T]

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig[T value.Element] = optim.AdamConfig[T]

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(
//	    model.Parameters(),
//	    optim.AdamConfig[float32]{
//	        LR:    0.001,
//	        Betas: [2]float32{0.9, 0.999},
//	        Eps:   1e-8,
//	    },
//	)
func NewAdam[T value.Element](params []*nn.Parameter[T], config AdamConfig[T]) *Adam[T] {
	return optim.NewAdam(params, config)
}
