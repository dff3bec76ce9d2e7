package tensor

// MatMul performs matrix multiplication.
// For 2D matrices: (M, K) @ (K, N) -> (M, N)
// Uses a naive O(n³) implementation.
func MatMul[T Float](a, b *Matrix[T]) (*Matrix[T], error) {
	m, k := a.rows, a.cols
	kAlt, n := b.rows, b.cols

	if k != kAlt {
		return nil, &ShapeError{Op: "matmul", Left: a.Shape(), Right: b.Shape()}
	}

	result := &Matrix[T]{rows: m, cols: n, data: make([]T, m*n)}
	matmul(result.data, a.data, b.data, m, k, n)
	return result, nil
}

// matmul performs naive matrix multiplication.
// C[i,j] = sum_k A[i,k] * B[k,j]
func matmul[T Float](c, a, b []T, m, k, n int) {
	for i := range c {
		c[i] = 0
	}

	// i-k-j order walks both B and C rows contiguously.
	for i := 0; i < m; i++ {
		cRow := c[i*n : (i+1)*n]
		for kIdx := 0; kIdx < k; kIdx++ {
			aik := a[i*k+kIdx]
			if aik == 0 {
				continue
			}
			bRow := b[kIdx*n : (kIdx+1)*n]
			for j, bkj := range bRow {
				cRow[j] += aik * bkj
			}
		}
	}
}
