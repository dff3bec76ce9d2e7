// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/symgrad/internal/tensor"
)

// Float is a constraint for matrix element types (float32, float64).
type Float = tensor.Float

// DataType represents the element type of a matrix.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape is a [rows, cols] pair.
type Shape = tensor.Shape

// Matrix is a dense row-major matrix.
type Matrix[T Float] = tensor.Matrix[T]

// ShapeError reports the operand shapes of a failed operation.
type ShapeError = tensor.ShapeError

// Errors.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrDataLength    = tensor.ErrDataLength
)

// New creates a zero-filled rows×cols matrix.
func New[T Float](rows, cols int) (*Matrix[T], error) {
	return tensor.New[T](rows, cols)
}

// Zeros creates a zero-filled matrix of the given shape.
func Zeros[T Float](shape Shape) *Matrix[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a matrix of the given shape filled with ones.
func Ones[T Float](shape Shape) *Matrix[T] {
	return tensor.Ones[T](shape)
}

// Full creates a matrix of the given shape filled with v.
func Full[T Float](shape Shape, v T) *Matrix[T] {
	return tensor.Full(shape, v)
}

// FromSlice creates a rows×cols matrix from row-major data.
//
// Example:
//
//	m, err := tensor.FromSlice(2, 2, []float64{1, 2, 3, 4})
func FromSlice[T Float](rows, cols int, data []T) (*Matrix[T], error) {
	return tensor.FromSlice(rows, cols, data)
}

// ColumnVector creates an n×1 matrix.
func ColumnVector[T Float](data []T) (*Matrix[T], error) {
	return tensor.ColumnVector(data)
}

// FromFunc creates a rows×cols matrix with element (i, j) set to f(i, j).
func FromFunc[T Float](rows, cols int, f func(i, j int) T) (*Matrix[T], error) {
	return tensor.FromFunc(rows, cols, f)
}

// MatMul returns the matrix product a @ b.
func MatMul[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return tensor.MatMul(a, b)
}

// Add returns a + b elementwise.
func Add[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return tensor.Add(a, b)
}

// Sub returns a - b elementwise.
func Sub[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return tensor.Sub(a, b)
}

// Mul returns the elementwise product.
func Mul[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return tensor.Mul(a, b)
}

// Div returns a / b elementwise.
func Div[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return tensor.Div(a, b)
}

// Scale returns m * s.
func Scale[T Float](m *Matrix[T], s T) *Matrix[T] {
	return tensor.Scale(m, s)
}

// Transpose returns mᵀ.
func Transpose[T Float](m *Matrix[T]) *Matrix[T] {
	return tensor.Transpose(m)
}

// Sum returns the sum of all elements.
func Sum[T Float](m *Matrix[T]) T {
	return tensor.Sum(m)
}
