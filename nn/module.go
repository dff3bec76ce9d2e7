// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/symgrad/internal/nn"
	"github.com/born-ml/symgrad/internal/serialization"
	"github.com/born-ml/symgrad/internal/value"
	"github.com/born-ml/symgrad/tensor"
)

// Module is the interface for all neural network components.
//
// Forward builds the output expression for an input expression and
// Parameters lists the trainable matrices.
type Module[T value.Element] = nn.Module[T]

// Header is the metadata stored alongside saved parameters.
type Header = serialization.Header

// CheckpointMeta records the training state stored in a checkpoint.
type CheckpointMeta = serialization.CheckpointMeta

// StateDict returns the parameter matrices keyed by name.
func StateDict[T value.Element](params []*Parameter[T]) map[string]*tensor.Matrix[T] {
	return nn.StateDict(params)
}

// LoadStateDict copies state into params. Nothing is modified on error.
func LoadStateDict[T value.Element](params []*Parameter[T], state map[string]*tensor.Matrix[T]) error {
	return nn.LoadStateDict(params, state)
}

// Save writes the parameters of module to path.
//
// Parameters:
//   - module: The module to save
//   - path: File path to write to
//   - modelType: Type name of the model (e.g., "Sequential", "Linear")
//   - checkpoint: Optional training state (can be nil)
//
// Example:
//
//	model := nn.NewLinear[float32]("fc", 784, 10, rng)
//	err := nn.Save[float32](model, "model.symg", "Linear", nil)
func Save[T value.Element](module Module[T], path, modelType string, checkpoint *CheckpointMeta) error {
	return nn.Save(module, path, modelType, checkpoint)
}

// Load reads parameters from path into a module of the same architecture.
//
// Example:
//
//	model := nn.NewLinear[float32]("fc", 784, 10, rng)
//	header, err := nn.Load[float32]("model.symg", model)
func Load[T value.Element](path string, module Module[T]) (Header, error) {
	return nn.Load(path, module)
}
