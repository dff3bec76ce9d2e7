package tensor

import (
	"fmt"
	"strings"
)

// Matrix is a dense row-major 2D matrix.
//
// Matrices are treated as immutable by the differentiation engine: every
// operation allocates a new result. Callers that own a matrix (e.g. an
// optimizer updating a parameter) may mutate it through Data or Set.
type Matrix[T Float] struct {
	rows, cols int
	data       []T
}

// New creates a zero-filled matrix with the given dimensions.
func New[T Float](rows, cols int) (*Matrix[T], error) {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		return nil, err
	}
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// Zeros creates a zero-filled matrix of the given shape. It panics on an invalid shape.
func Zeros[T Float](shape Shape) *Matrix[T] {
	m, err := New[T](shape.Rows(), shape.Cols())
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return m
}

// Full creates a matrix of the given shape filled with value.
func Full[T Float](shape Shape, value T) *Matrix[T] {
	m := Zeros[T](shape)
	for i := range m.data {
		m.data[i] = value
	}
	return m
}

// Ones creates a matrix of the given shape filled with ones.
func Ones[T Float](shape Shape) *Matrix[T] {
	return Full[T](shape, 1)
}

// FromSlice creates a matrix from row-major data.
// The slice is copied into the matrix's memory.
func FromSlice[T Float](rows, cols int, data []T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: shape %dx%d requires %d elements, but got %d",
			ErrDataLength, rows, cols, rows*cols, len(data))
	}
	copy(m.data, data)
	return m, nil
}

// ColumnVector creates an n×1 matrix from data.
func ColumnVector[T Float](data []T) (*Matrix[T], error) {
	return FromSlice(len(data), 1, data)
}

// FromFunc creates a matrix whose element (i, j) is f(i, j).
func FromFunc[T Float](rows, cols int, f func(i, j int) T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*cols+j] = f(i, j)
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape returns the matrix shape.
func (m *Matrix[T]) Shape() Shape { return Shape{m.rows, m.cols} }

// NumElements returns the total number of elements.
func (m *Matrix[T]) NumElements() int { return len(m.data) }

// DType returns the runtime element type.
func (m *Matrix[T]) DType() DataType { return DataTypeOf[T]() }

// Data returns the underlying row-major storage.
func (m *Matrix[T]) Data() []T { return m.data }

// At returns element (i, j).
func (m *Matrix[T]) At(i, j int) T {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at (i, j).
func (m *Matrix[T]) Set(i, j int, v T) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix[T]) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether both matrices have the same shape and elements.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// AllClose reports whether both matrices have the same shape and every pair
// of elements differs by at most tol.
func (m *Matrix[T]) AllClose(other *Matrix[T], tol T) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		d := v - other.data[i]
		if d < 0 {
			d = -d
		}
		if d > tol || d != d {
			return false
		}
	}
	return true
}

// IsAllZero reports whether every element equals zero.
func (m *Matrix[T]) IsAllZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// Argmax returns the flat index of the largest element.
func (m *Matrix[T]) Argmax() int {
	best := 0
	for i, v := range m.data {
		if v > m.data[best] {
			best = i
		}
	}
	return best
}

// String formats the matrix row by row.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.cols+j])
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
