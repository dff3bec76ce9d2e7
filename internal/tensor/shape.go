package tensor

import "fmt"

// Shape represents the dimensions of a matrix as [rows, cols].
type Shape []int

// Rows returns the first dimension.
func (s Shape) Rows() int {
	if len(s) == 0 {
		return 1
	}
	return s[0]
}

// Cols returns the second dimension.
func (s Shape) Cols() int {
	if len(s) < 2 {
		return 1
	}
	return s[1]
}

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is a valid matrix shape (two dimensions > 0).
func (s Shape) Validate() error {
	if len(s) != 2 {
		return fmt.Errorf("%w: expected 2 dimensions, got %d", ErrInvalidShape, len(s))
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// T returns the transposed shape.
func (s Shape) T() Shape {
	if len(s) != 2 {
		return s.Clone()
	}
	return Shape{s[1], s[0]}
}

// String formats the shape as RxC.
func (s Shape) String() string {
	if len(s) == 2 {
		return fmt.Sprintf("%dx%d", s[0], s[1])
	}
	return fmt.Sprint([]int(s))
}
