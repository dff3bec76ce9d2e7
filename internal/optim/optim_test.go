package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/symgrad/internal/autodiff"
	"github.com/born-ml/symgrad/internal/nn"
	"github.com/born-ml/symgrad/internal/optim"
	"github.com/born-ml/symgrad/internal/tensor"
)

func param(t *testing.T, name string, data ...float64) *nn.Parameter[float64] {
	t.Helper()
	m, err := tensor.ColumnVector(data)
	require.NoError(t, err)
	return nn.NewParameter(name, m)
}

func grad(t *testing.T, data ...float64) *tensor.Matrix[float64] {
	t.Helper()
	m, err := tensor.ColumnVector(data)
	require.NoError(t, err)
	return m
}

var (
	_ optim.Optimizer[float64] = (*optim.SGD[float64])(nil)
	_ optim.Optimizer[float32] = (*optim.Adam[float32])(nil)
)

func TestSGD_SimpleUpdate(t *testing.T) {
	x := param(t, "x", 2.0)
	opt := optim.NewSGD([]*nn.Parameter[float64]{x}, optim.SGDConfig[float64]{LR: 0.1})

	require.NoError(t, opt.Step(map[string]*tensor.Matrix[float64]{"x": grad(t, 1.0)}))

	// x_new = 2.0 - 0.1 * 1.0
	assert.InDelta(t, 1.9, x.Matrix().Data()[0], 1e-12)
}

func TestSGD_WithMomentum(t *testing.T) {
	x := param(t, "x", 1.0)
	opt := optim.NewSGD([]*nn.Parameter[float64]{x}, optim.SGDConfig[float64]{LR: 0.1, Momentum: 0.9})
	grads := map[string]*tensor.Matrix[float64]{"x": grad(t, 1.0)}

	// Step 1: v = 1, x = 1 - 0.1 = 0.9
	require.NoError(t, opt.Step(grads))
	assert.InDelta(t, 0.9, x.Matrix().Data()[0], 1e-12)

	// Step 2: v = 0.9 + 1 = 1.9, x = 0.9 - 0.19 = 0.71
	require.NoError(t, opt.Step(grads))
	assert.InDelta(t, 0.71, x.Matrix().Data()[0], 1e-12)
}

func TestSGD_Defaults(t *testing.T) {
	opt := optim.NewSGD[float32](nil, optim.SGDConfig[float32]{})
	assert.Equal(t, float32(0.01), opt.GetLR())

	opt.SetLR(0.5)
	assert.Equal(t, float32(0.5), opt.GetLR())
}

func TestSGD_SkipsMissingGradient(t *testing.T) {
	x := param(t, "x", 1.0, 2.0)
	y := param(t, "y", 3.0)
	opt := optim.NewSGD([]*nn.Parameter[float64]{x, y}, optim.SGDConfig[float64]{LR: 1})

	require.NoError(t, opt.Step(map[string]*tensor.Matrix[float64]{"y": grad(t, 1.0)}))
	assert.Equal(t, []float64{1, 2}, x.Matrix().Data())
	assert.Equal(t, []float64{2}, y.Matrix().Data())
}

func TestStep_ShapeMismatchLeavesParameters(t *testing.T) {
	x := param(t, "x", 1.0)
	y := param(t, "y", 3.0)
	grads := map[string]*tensor.Matrix[float64]{
		"x": grad(t, 1.0),
		"y": grad(t, 1.0, 2.0),
	}

	for _, opt := range []optim.Optimizer[float64]{
		optim.NewSGD([]*nn.Parameter[float64]{x, y}, optim.SGDConfig[float64]{LR: 1}),
		optim.NewAdam([]*nn.Parameter[float64]{x, y}, optim.AdamConfig[float64]{}),
	} {
		err := opt.Step(grads)
		require.Error(t, err)
		assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
		assert.Contains(t, err.Error(), `"y"`)
		assert.Equal(t, []float64{1}, x.Matrix().Data())
	}
}

func TestAdam_FirstStep(t *testing.T) {
	x := param(t, "x", 1.0, -1.0)
	opt := optim.NewAdam([]*nn.Parameter[float64]{x}, optim.AdamConfig[float64]{LR: 0.1})

	// With bias correction the first step moves each element by ~lr * sign(grad).
	require.NoError(t, opt.Step(map[string]*tensor.Matrix[float64]{"x": grad(t, 0.5, -4.0)}))
	assert.InDeltaSlice(t, []float64{0.9, -0.9}, x.Matrix().Data(), 1e-6)
}

// TestAdam_MinimizesQuadratic drives f(x) = sum((x - 3)²) towards x = 3
// using symbolic gradients.
func TestAdam_MinimizesQuadratic(t *testing.T) {
	x := param(t, "x", 0.0, 10.0)
	opt := optim.NewAdam([]*nn.Parameter[float64]{x}, optim.AdamConfig[float64]{LR: 0.1})
	target := autodiff.Matrix(grad(t, 3.0, 3.0))

	for range 500 {
		diff := x.Expr().Sub(target)
		f := diff.ElemMul(diff).Sum()
		grads, err := nn.Backward(f, autodiff.Scalar(1.0), []*nn.Parameter[float64]{x})
		require.NoError(t, err)
		require.NoError(t, opt.Step(grads))
	}

	assert.InDeltaSlice(t, []float64{3, 3}, x.Matrix().Data(), 1e-2)
}
