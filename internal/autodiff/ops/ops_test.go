package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/symgrad/internal/autodiff/ops"
	"github.com/born-ml/symgrad/internal/tensor"
	"github.com/born-ml/symgrad/internal/value"
)

func scalar(v float64) ops.Node {
	return ops.NewConstant(value.NewScalar(v))
}

func variable(name string, v float64) ops.Node {
	return ops.NewSymbol(scalar(v), name)
}

func matrix(t *testing.T, rows, cols int, data ...float64) *tensor.Matrix[float64] {
	t.Helper()
	m, err := tensor.FromSlice(rows, cols, data)
	require.NoError(t, err)
	return m
}

func matrixVar(t *testing.T, name string, rows, cols int, data ...float64) ops.Node {
	t.Helper()
	return ops.NewSymbol(ops.NewConstant(value.NewMatrix(matrix(t, rows, cols, data...))), name)
}

func evalScalar(t *testing.T, n ops.Node) float64 {
	t.Helper()
	v, err := n.Eval()
	require.NoError(t, err)
	s, err := value.ToScalar[float64](v)
	require.NoError(t, err)
	return s
}

func evalMatrix(t *testing.T, n ops.Node, shape tensor.Shape) *tensor.Matrix[float64] {
	t.Helper()
	v, err := n.Eval()
	require.NoError(t, err)
	m, err := value.ToMatrix[float64](v, shape)
	require.NoError(t, err)
	return m
}

// TestSumRule checks that Add hands the seed unchanged to both operands.
func TestSumRule(t *testing.T) {
	a := matrixVar(t, "a", 2, 2, 1, 2, 3, 4)
	b := matrixVar(t, "b", 2, 2, 5, 6, 7, 8)
	seed := matrix(t, 2, 2, 0.5, -1, 2, 3)

	d := ops.NewAdd(a, b).Derivative([]string{"a", "b"}, ops.NewConstant(value.NewMatrix(seed)))
	require.Len(t, d, 2)

	for i, name := range []string{"a", "b"} {
		got := evalMatrix(t, d[i], tensor.Shape{2, 2})
		assert.True(t, got.Equal(seed), "d/d%s = %v, want %v", name, got, seed)
	}
}

// TestProductRule differentiates x*y + x*x at x=2, y=3.
func TestProductRule(t *testing.T) {
	x := variable("x", 2)
	y := variable("y", 3)
	f := ops.NewAdd(ops.NewMul(x, y), ops.NewMul(x, x))

	assert.Equal(t, 10.0, evalScalar(t, f))

	d := f.Derivative([]string{"x", "y"}, scalar(1))
	assert.Equal(t, 7.0, evalScalar(t, d[0]))
	assert.Equal(t, 2.0, evalScalar(t, d[1]))
}

// TestQuotientRule differentiates x/(x+y) and y/(x+y) at x=1, y=2.
func TestQuotientRule(t *testing.T) {
	x := variable("x", 1)
	y := variable("y", 2)
	sum := ops.NewAdd(x, y)

	f1 := ops.NewDiv(x, sum)
	assert.InDelta(t, 0.2222, evalScalar(t, f1.Derivative([]string{"x"}, scalar(1))[0]), 1e-4)

	f2 := ops.NewDiv(y, sum)
	assert.InDelta(t, 0.1111, evalScalar(t, f2.Derivative([]string{"y"}, scalar(1))[0]), 1e-4)
}

// TestQuotientSimplifies checks (x*y + x*x)/(y + x), which equals x.
func TestQuotientSimplifies(t *testing.T) {
	x := variable("x", 2)
	y := variable("y", 3)
	f := ops.NewDiv(ops.NewAdd(ops.NewMul(x, y), ops.NewMul(x, x)), ops.NewAdd(y, x))

	assert.InDelta(t, 2.0, evalScalar(t, f), 1e-12)

	d := f.Derivative([]string{"x", "y"}, scalar(1))
	assert.InDelta(t, 1.0, evalScalar(t, d[0]), 1e-12)
	assert.InDelta(t, 0.0, evalScalar(t, d[1]), 1e-12)
}

// TestMatMulShapes checks d(W·x)/dW is m×n and d(W·x)/dx is n×1.
func TestMatMulShapes(t *testing.T) {
	w := matrixVar(t, "w", 3, 2, 1, 2, 3, 4, 5, 6)
	x := matrixVar(t, "x", 2, 1, 1, 2)
	seed := ops.NewConstant(value.NewMatrix(tensor.Ones[float64](tensor.Shape{3, 1})))

	f := ops.NewMul(w, x)
	out := evalMatrix(t, f, tensor.Shape{3, 1})
	assert.Equal(t, []float64{5, 11, 17}, out.Data())

	d := f.Derivative([]string{"w", "x"}, seed)

	dw := evalMatrix(t, d[0], tensor.Shape{3, 2})
	assert.Equal(t, []float64{1, 2, 1, 2, 1, 2}, dw.Data())

	dx := evalMatrix(t, d[1], tensor.Shape{2, 1})
	assert.Equal(t, []float64{9, 12}, dx.Data())
}

// TestAbsentNameIsZero checks that an unknown name yields a structural zero
// without touching any matrix, even when the expression itself cannot be
// evaluated.
func TestAbsentNameIsZero(t *testing.T) {
	w := matrixVar(t, "w", 3, 2, 1, 2, 3, 4, 5, 6)
	broken := ops.NewMul(w, w)

	_, err := broken.Eval()
	require.Error(t, err)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	var evalErr *ops.EvalError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "mul", evalErr.Op)

	tests := []struct {
		name string
		node ops.Node
	}{
		{"add", ops.NewAdd(broken, w)},
		{"sub", ops.NewSub(w, broken)},
		{"mul", broken},
		{"elem_mul", ops.NewElemMul(broken, w)},
		{"div", ops.NewDiv(broken, w)},
		{"neg", ops.NewNeg(broken)},
		{"transpose", ops.NewTranspose(broken)},
		{"exp", ops.NewExp(broken)},
		{"sum", ops.NewSum(broken)},
		{"constant", scalar(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.node.Derivative([]string{"missing"}, scalar(1))
			require.Len(t, d, 1)
			assert.True(t, d[0].IsZero())

			v, err := d[0].Eval()
			require.NoError(t, err)
			assert.Equal(t, value.Zero, v)
		})
	}
}

// TestExpSelfReference differentiates 5*exp(4x+1) against 20*exp(4x+1).
func TestExpSelfReference(t *testing.T) {
	data := []float64{0, 0.1, 0.2, 0.3}
	x := matrixVar(t, "x", 2, 2, data...)
	g := ops.NewExp(ops.NewAdd(ops.NewMul(scalar(4), x), scalar(1)))
	f := ops.NewMul(scalar(5), g)

	got := evalMatrix(t, f.Derivative([]string{"x"}, scalar(1))[0], tensor.Shape{2, 2})

	want := make([]float64, len(data))
	for i, v := range data {
		want[i] = 20 * math.Exp(4*v+1)
	}
	assert.InDeltaSlice(t, want, got.Data(), 1e-6)
}

// TestSoftmaxDerivative checks d(softmax(x))/dx = s(1-s) elementwise.
func TestSoftmaxDerivative(t *testing.T) {
	data := []float64{1, 2, 3}
	x := matrixVar(t, "x", 3, 1, data...)
	e := ops.NewExp(x)
	s := ops.NewDiv(e, ops.NewSum(e))

	probs := evalMatrix(t, s, tensor.Shape{3, 1})
	assert.InDelta(t, 1.0, tensor.Sum(probs), 1e-12)

	got := evalMatrix(t, s.Derivative([]string{"x"}, scalar(1))[0], tensor.Shape{3, 1})
	for i, p := range probs.Data() {
		assert.InDelta(t, p*(1-p), got.Data()[i], 1e-9)
	}
}

// TestTransposeCommutesWithProduct checks (A·B)^T == B^T·A^T.
func TestTransposeCommutesWithProduct(t *testing.T) {
	a := matrixVar(t, "a", 2, 3, 1, 2, 3, 4, 5, 6)
	b := matrixVar(t, "b", 3, 2, 7, 8, 9, 10, 11, 12)

	lhs, err := ops.NewTranspose(ops.NewMul(a, b)).Eval()
	require.NoError(t, err)
	rhs, err := ops.NewMul(ops.NewTranspose(b), ops.NewTranspose(a)).Eval()
	require.NoError(t, err)

	assert.True(t, value.Equal(lhs, rhs), "%v != %v", lhs, rhs)
}

func TestTransposeDerivative(t *testing.T) {
	x := matrixVar(t, "x", 2, 3, 1, 2, 3, 4, 5, 6)
	seed := matrix(t, 3, 2, 1, 2, 3, 4, 5, 6)

	d := ops.NewTranspose(x).Derivative([]string{"x"}, ops.NewConstant(value.NewMatrix(seed)))
	got := evalMatrix(t, d[0], tensor.Shape{2, 3})
	assert.True(t, got.Equal(tensor.Transpose(seed)))
}

func TestNegAndSub(t *testing.T) {
	x := variable("x", 2)
	y := variable("y", 5)

	neg := ops.NewNeg(x)
	assert.Equal(t, -2.0, evalScalar(t, neg))
	assert.Equal(t, -1.0, evalScalar(t, neg.Derivative([]string{"x"}, scalar(1))[0]))

	d := ops.NewSub(x, y).Derivative([]string{"x", "y"}, scalar(3))
	assert.Equal(t, 3.0, evalScalar(t, d[0]))
	assert.Equal(t, -3.0, evalScalar(t, d[1]))
}

func TestElemMulDerivative(t *testing.T) {
	a := matrixVar(t, "a", 1, 3, 1, 2, 3)
	b := matrixVar(t, "b", 1, 3, 4, 5, 6)
	seed := ops.NewConstant(value.NewMatrix(matrix(t, 1, 3, 1, 1, 2)))

	d := ops.NewElemMul(a, b).Derivative([]string{"a", "b"}, seed)
	assert.Equal(t, []float64{4, 5, 12}, evalMatrix(t, d[0], tensor.Shape{1, 3}).Data())
	assert.Equal(t, []float64{1, 2, 6}, evalMatrix(t, d[1], tensor.Shape{1, 3}).Data())
}

func TestSumPassesSeedThrough(t *testing.T) {
	x := matrixVar(t, "x", 2, 2, 1, 2, 3, 4)
	f := ops.NewSum(x)

	assert.Equal(t, 10.0, evalScalar(t, f))

	got := evalMatrix(t, f.Derivative([]string{"x"}, scalar(1))[0], tensor.Shape{2, 2})
	assert.Equal(t, []float64{1, 1, 1, 1}, got.Data())
}

func TestConstantDerivativeIgnoresSeed(t *testing.T) {
	c := ops.NewConstant(value.NewMatrix(matrix(t, 2, 2, 1, 2, 3, 4)))
	d := c.Derivative([]string{"x", "y"}, scalar(42))
	require.Len(t, d, 2)
	for _, n := range d {
		assert.True(t, n.IsZero())
	}
}

func TestDivideByStructuralZero(t *testing.T) {
	x := variable("x", 2)

	_, err := ops.NewDiv(x, ops.ZeroNode()).Eval()
	assert.ErrorIs(t, err, value.ErrDivideByZero)

	zz := ops.NewDiv(ops.ZeroNode(), ops.ZeroNode())
	assert.False(t, zz.IsZero())
	_, err = zz.Eval()
	assert.ErrorIs(t, err, value.ErrDivideByZero)

	assert.True(t, ops.NewDiv(ops.ZeroNode(), x).IsZero())
}

// TestDerivativeIsLazy checks that building a derivative never evaluates:
// the failing expression only errors once the derivative is evaluated.
func TestDerivativeIsLazy(t *testing.T) {
	w := matrixVar(t, "w", 3, 2, 1, 2, 3, 4, 5, 6)
	f := ops.NewMul(w, w)
	seed := ops.NewConstant(value.NewMatrix(tensor.Ones[float64](tensor.Shape{3, 2})))

	d := f.Derivative([]string{"w"}, seed)
	require.Len(t, d, 1)
	assert.False(t, d[0].IsZero())

	_, err := d[0].Eval()
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

// TestStructuralZeroKeepsShape checks that a shape-hinted zero behaves like
// its materialised form however it flows through the tree.
func TestStructuralZeroKeepsShape(t *testing.T) {
	z := ops.NewConstant(value.ZeroMatrix[float64](tensor.Shape{2, 2}))
	square := ops.NewConstant(value.NewMatrix(matrix(t, 2, 2, 1, 2, 3, 4)))
	wide := ops.NewConstant(value.NewMatrix(matrix(t, 2, 3, 1, 2, 3, 4, 5, 6)))

	tests := []struct {
		name string
		node ops.Node
		want float64 // sum(exp(node))
	}{
		{"constant", z, 4},
		{"neg", ops.NewNeg(z), 4},
		{"transpose", ops.NewTranspose(z), 4},
		{"add", ops.NewAdd(z, z), 4},
		{"sub", ops.NewSub(z, z), 4},
		{"add atom", ops.NewAdd(ops.ZeroNode(), z), 4},
		{"mul", ops.NewMul(z, wide), 6},
		{"one times", ops.NewMul(ops.OneNode(), z), 4},
		{"elem_mul", ops.NewElemMul(z, square), 4},
		{"div", ops.NewDiv(z, square), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.node.IsZero())

			v, err := tt.node.Eval()
			require.NoError(t, err)
			assert.Equal(t, value.MatrixKind, v.Kind())

			assert.Equal(t, tt.want, evalScalar(t, ops.NewSum(ops.NewExp(tt.node))))
		})
	}
}

func TestAtomZeroAbsorbsWithoutEvaluating(t *testing.T) {
	w := matrixVar(t, "w", 3, 2, 1, 2, 3, 4, 5, 6)
	broken := ops.NewMul(w, w)

	for _, n := range []ops.Node{
		ops.NewMul(ops.ZeroNode(), broken),
		ops.NewElemMul(broken, ops.ZeroNode()),
		ops.NewDiv(ops.ZeroNode(), broken),
	} {
		v, err := n.Eval()
		require.NoError(t, err)
		assert.Equal(t, value.Zero, v)
	}
}

func TestShapeHintMismatch(t *testing.T) {
	z := ops.NewConstant(value.ZeroMatrix[float64](tensor.Shape{2, 3}))
	d := ops.NewConstant(value.NewMatrix(matrix(t, 3, 2, 1, 2, 3, 4, 5, 6)))

	_, err := ops.NewAdd(z, d).Eval()
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	var evalErr *ops.EvalError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "add", evalErr.Op)

	_, err = ops.NewSub(d, z).Eval()
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
