// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides symbolic automatic differentiation.
//
// Expressions are immutable graphs built from leaves (constants and named
// symbols) and operators. Differentiating an expression returns new
// expressions; nothing is computed until Eval is called.
//
// Example:
//
//	import "github.com/born-ml/symgrad/autodiff"
//
//	func main() {
//	    x := autodiff.Var(5.0, "x")
//	    y := autodiff.Var(2.0, "y")
//	    f := x.Mul(y).Add(x.Mul(x)) // x*y + x*x
//
//	    d := f.Derivative([]string{"x", "y"}, autodiff.One())
//	    dx, _ := autodiff.EvalScalar[float64](d[0]) // y + 2x = 12
//	    dy, _ := autodiff.EvalScalar[float64](d[1]) // x = 5
//	}
package autodiff

import (
	"github.com/born-ml/symgrad/internal/autodiff"
	"github.com/born-ml/symgrad/internal/autodiff/ops"
	"github.com/born-ml/symgrad/internal/tensor"
	"github.com/born-ml/symgrad/internal/value"
)

// Expr is a handle to an expression graph node.
type Expr = autodiff.Expr

// Seed pairs a symbol name with the upstream gradient used for it.
type Seed = autodiff.Seed

// Value is the result of evaluating an expression.
type Value = value.Value

// Element is the set of supported element types (float32, float64).
type Element = value.Element

// EvalError reports the operator at which evaluation failed.
type EvalError = ops.EvalError

// Evaluation errors.
var (
	ErrUnsupportedCombination = value.ErrUnsupportedCombination
	ErrDivideByZero           = value.ErrDivideByZero
	ErrUnknownShape           = value.ErrUnknownShape
)

// Zero returns the additive identity. It is the structural zero: products
// with it are pruned when a derivative is built.
func Zero() Expr {
	return autodiff.Zero()
}

// One returns the multiplicative identity.
//
// One is an untyped atom. Derivatives that negate it or add it to itself,
// such as d(x-y)/dy, d(-x)/dx or d(x+x)/dx, fail with an atom range error
// when seeded with One. Seed with Scalar(1.0) for those.
func One() Expr {
	return autodiff.One()
}

// Const wraps an arbitrary value as a constant leaf.
func Const(v Value) Expr {
	return autodiff.Const(v)
}

// Scalar returns a constant scalar leaf.
func Scalar[T Element](v T) Expr {
	return autodiff.Scalar(v)
}

// Matrix returns a constant matrix leaf. A nil matrix is a structural zero.
func Matrix[T Element](m *tensor.Matrix[T]) Expr {
	return autodiff.Matrix(m)
}

// Bind names an expression so it can be differentiated against.
func Bind(e Expr, name string) Expr {
	return autodiff.Bind(e, name)
}

// Var returns a named scalar variable.
func Var[T Element](v T, name string) Expr {
	return autodiff.Var(v, name)
}

// MatrixVar returns a named matrix variable.
func MatrixVar[T Element](m *tensor.Matrix[T], name string) Expr {
	return autodiff.MatrixVar(m, name)
}

// Gradients differentiates e with a possibly different seed per name.
func Gradients(e Expr, seeds ...Seed) (map[string]Expr, error) {
	return autodiff.Gradients(e, seeds...)
}

// EvalScalar evaluates e and converts the result to a T.
func EvalScalar[T Element](e Expr) (T, error) {
	return autodiff.EvalScalar[T](e)
}

// EvalMatrix evaluates e and materialises the result with the given shape.
// Scalars and structural zeros are broadcast; dense results must match it.
func EvalMatrix[T Element](e Expr, shape tensor.Shape) (*tensor.Matrix[T], error) {
	return autodiff.EvalMatrix[T](e, shape)
}
