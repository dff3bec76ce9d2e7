package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrInvalidShape  = errors.New("invalid shape")
	ErrDataLength    = errors.New("data length does not match shape")
)

// ShapeError provides both operand shapes of a failed operation.
type ShapeError struct {
	Op    string // Operation name (e.g., "matmul", "add")
	Left  Shape  // Left operand shape (the expected one for elementwise ops)
	Right Shape  // Right operand shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Op == "matmul" {
		return fmt.Sprintf("%s: %s: inner dimensions differ: [%d,%d] @ [%d,%d]",
			e.Op, ErrShapeMismatch, e.Left.Rows(), e.Left.Cols(), e.Right.Rows(), e.Right.Cols())
	}
	return fmt.Sprintf("%s: %s: expected %s, got %s", e.Op, ErrShapeMismatch, e.Left, e.Right)
}

// Unwrap lets errors.Is match ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
