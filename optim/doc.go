// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training models built
// from symbolic expressions.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Optimizers consume gradients keyed by parameter name, as produced by
// nn.Backward.
//
// # Basic Usage
//
//	model := nn.NewLinear[float32]("fc", 784, 10, rng)
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig[float32]{LR: 0.01})
//
//	for _, sample := range data {
//	    x := autodiff.MatrixVar(sample.X, "x")
//	    y := model.Forward(x)
//	    out, _ := autodiff.EvalMatrix[float32](y, tensor.Shape{10, 1})
//	    seed, _ := nn.MSESeed(out, sample.Target)
//
//	    grads, _ := nn.Backward(y, autodiff.Matrix(seed), model.Parameters())
//	    if err := optimizer.Step(grads); err != nil {
//	        return err
//	    }
//	}
package optim
