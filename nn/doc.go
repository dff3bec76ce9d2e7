// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers built from symbolic expressions.
//
// # Overview
//
// This package contains:
//   - Layers: Linear (y = W·x + b)
//   - Activations: Sigmoid, Tanh, Softmax
//   - Loss helpers: MSE, MSESeed, Argmax
//   - Utilities: Sequential, Module interface, Parameter
//   - Initialization: Xavier, Zeros
//   - Persistence: Save, Load, StateDict, LoadStateDict
//
// Parameters enter expressions as named symbols, so gradients are requested
// by parameter name and come back keyed the same way.
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/symgrad/autodiff"
//	    "github.com/born-ml/symgrad/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//
//	    // Build a simple MLP
//	    model := nn.NewSequential[float32](
//	        nn.NewLinear[float32]("fc1", 784, 32, rng),
//	        nn.NewSigmoid[float32](),
//	        nn.NewLinear[float32]("fc2", 32, 10, rng),
//	    )
//
//	    // Forward builds an expression; nothing runs yet
//	    y := model.Forward(autodiff.Matrix(x))
//
//	    // Evaluate, seed with the loss gradient, differentiate
//	    out, _ := autodiff.EvalMatrix[float32](y, tensor.Shape{10, 1})
//	    seed, _ := nn.MSESeed(out, target)
//	    grads, _ := nn.Backward(y, autodiff.Matrix(seed), model.Parameters())
//	}
//
// # Inputs
//
// Inputs are column vectors: a layer with n inputs consumes an n×1 matrix.
package nn
