package tensor

// Map applies f to every element and returns a new matrix.
func Map[T Float](m *Matrix[T], f func(T) T) *Matrix[T] {
	out := &Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// zipWith combines two same-shaped matrices elementwise.
func zipWith[T Float](op string, a, b *Matrix[T], f func(x, y T) T) (*Matrix[T], error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, &ShapeError{Op: op, Left: a.Shape(), Right: b.Shape()}
	}
	out := &Matrix[T]{rows: a.rows, cols: a.cols, data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = f(a.data[i], b.data[i])
	}
	return out, nil
}

// Add performs element-wise addition.
func Add[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith("add", a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func Sub[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith("sub", a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise (Hadamard) multiplication.
func Mul[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith("elem_mul", a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
func Div[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith("div", a, b, func(x, y T) T { return x / y })
}

// Neg negates every element.
func Neg[T Float](m *Matrix[T]) *Matrix[T] {
	return Map(m, func(v T) T { return -v })
}

// Scale multiplies every element by s.
func Scale[T Float](m *Matrix[T], s T) *Matrix[T] {
	return Map(m, func(v T) T { return v * s })
}

// AddScalar adds s to every element.
func AddScalar[T Float](m *Matrix[T], s T) *Matrix[T] {
	return Map(m, func(v T) T { return v + s })
}

// RSubScalar computes s - m elementwise.
func RSubScalar[T Float](s T, m *Matrix[T]) *Matrix[T] {
	return Map(m, func(v T) T { return s - v })
}

// RDivScalar computes s / m elementwise.
func RDivScalar[T Float](s T, m *Matrix[T]) *Matrix[T] {
	return Map(m, func(v T) T { return s / v })
}

// ExpElem computes e**x for every element.
func ExpElem[T Float](m *Matrix[T]) *Matrix[T] {
	return Map(m, Exp[T])
}

// Sum reduces all elements to a single value.
func Sum[T Float](m *Matrix[T]) T {
	var s T
	for _, v := range m.data {
		s += v
	}
	return s
}

// Transpose swaps rows and columns.
func Transpose[T Float](m *Matrix[T]) *Matrix[T] {
	out := &Matrix[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return out
}
