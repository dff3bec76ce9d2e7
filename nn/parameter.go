// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/symgrad/internal/nn"
	"github.com/born-ml/symgrad/internal/value"
	"github.com/born-ml/symgrad/tensor"
)

// Parameter represents a trainable matrix in a model.
//
// In expressions a parameter is a symbol carrying its name:
//
//	weight := nn.NewParameter("fc.weight", w)
//	y := weight.Expr().Mul(x)
//
// Methods:
//
//	Name() string
//	    Returns the symbol name (e.g., "fc.weight").
//
//	Matrix() *tensor.Matrix[T]
//	    Returns the current values. Optimizers update them in place.
//
//	Expr() autodiff.Expr
//	    Returns the parameter as a named variable.
//
// Note: Parameter is a type alias because it appears in the Module
// interface, which must match the internal signature exactly.
type Parameter[T value.Element] = nn.Parameter[T]

// NewParameter creates a trainable parameter.
func NewParameter[T value.Element](name string, m *tensor.Matrix[T]) *Parameter[T] {
	return nn.NewParameter(name, m)
}
