// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense matrices that expressions evaluate to.
//
// # Overview
//
// A Matrix[T] is a row-major 2-D array of float32 or float64. Column vectors
// are matrices with a single column.
//
// # Basic Usage
//
//	w, err := tensor.FromSlice(2, 3, []float32{1, 2, 3, 4, 5, 6})
//	x, err := tensor.ColumnVector([]float32{1, 0, 1})
//	y, err := tensor.MatMul(w, x) // [2,1]
//
// # Errors
//
// Operations on incompatible shapes return a *ShapeError, which matches
// ErrShapeMismatch under errors.Is:
//
//	_, err := tensor.Add(a, b)
//	if errors.Is(err, tensor.ErrShapeMismatch) {
//	    // ...
//	}
package tensor
