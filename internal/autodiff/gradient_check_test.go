package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/symgrad/internal/autodiff"
	"github.com/born-ml/symgrad/internal/tensor"
)

// numericalGradient computes the gradient using central finite differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// build evaluates an expression constructor at x.
func build(t *testing.T, expr func(autodiff.Expr) autodiff.Expr, x float64) float64 {
	t.Helper()
	v, err := autodiff.EvalScalar[float64](expr(autodiff.Var(x, "x")))
	require.NoError(t, err)
	return v
}

func TestNumericalGradient_Scalar(t *testing.T) {
	const epsilon = 1e-5

	tests := []struct {
		name string
		expr func(x autodiff.Expr) autodiff.Expr
		at   float64
	}{
		{"square", func(x autodiff.Expr) autodiff.Expr { return x.Mul(x) }, 3},
		{"composite", func(x autodiff.Expr) autodiff.Expr {
			return x.Add(autodiff.Scalar(2.0)).Mul(autodiff.Scalar(3.0))
		}, 5},
		{"reciprocal", func(x autodiff.Expr) autodiff.Expr { return autodiff.Scalar(1.0).Div(x) }, 0.7},
		{"exp", func(x autodiff.Expr) autodiff.Expr { return x.Mul(x).Neg().Exp() }, 0.4},
		{"sigmoid", func(x autodiff.Expr) autodiff.Expr {
			one := autodiff.Scalar(1.0)
			return one.Div(one.Add(x.Neg().Exp()))
		}, -1.3},
		{"rational", func(x autodiff.Expr) autodiff.Expr {
			return x.Mul(x).Sub(x).Div(x.ElemMul(x).Add(autodiff.Scalar(1.0)))
		}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.expr(autodiff.Var(tt.at, "x")).Derivative([]string{"x"}, autodiff.Scalar(1.0))
			symbolic, err := autodiff.EvalScalar[float64](d[0])
			require.NoError(t, err)

			numeric := numericalGradient(func(v float64) float64 { return build(t, tt.expr, v) }, tt.at, epsilon)
			assert.InDelta(t, numeric, symbolic, 1e-6)
		})
	}
}

// TestNumericalGradient_Matrix checks every element of d(sum(exp(W·x)))/dW.
func TestNumericalGradient_Matrix(t *testing.T) {
	const epsilon = 1e-6

	wData := []float64{0.1, -0.2, 0.3, 0.4, 0.05, -0.6}
	x := autodiff.Matrix(fromSlice(t, 3, 1, 1, 0.5, -1))

	loss := func(w []float64) autodiff.Expr {
		m, err := tensor.FromSlice(2, 3, append([]float64(nil), w...))
		require.NoError(t, err)
		return autodiff.MatrixVar(m, "w").Mul(x).Exp().Sum()
	}

	d := loss(wData).Derivative([]string{"w"}, autodiff.Scalar(1.0))
	grad, err := autodiff.EvalMatrix[float64](d[0], tensor.Shape{2, 3})
	require.NoError(t, err)

	for i := range wData {
		plus := append([]float64(nil), wData...)
		minus := append([]float64(nil), wData...)
		plus[i] += epsilon
		minus[i] -= epsilon

		fp, err := autodiff.EvalScalar[float64](loss(plus))
		require.NoError(t, err)
		fm, err := autodiff.EvalScalar[float64](loss(minus))
		require.NoError(t, err)

		numeric := (fp - fm) / (2 * epsilon)
		assert.InDelta(t, numeric, grad.Data()[i], 1e-5, "element %d", i)
		assert.False(t, math.IsNaN(grad.Data()[i]))
	}
}
