package value_test

import (
	"math"
	"testing"

	"github.com/born-ml/symgrad/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtom_Order(t *testing.T) {
	assert.Equal(t, -1, value.Zero.Compare(value.One))
	assert.Equal(t, 0, value.One.Compare(value.One))
}

func TestAtom_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b value.Value) (value.Value, error)
		a, b value.Atom
		want value.Atom
	}{
		{"0+0", value.Add, value.Zero, value.Zero, value.Zero},
		{"0+1", value.Add, value.Zero, value.One, value.One},
		{"1+0", value.Add, value.One, value.Zero, value.One},
		{"1-1", value.Sub, value.One, value.One, value.Zero},
		{"1-0", value.Sub, value.One, value.Zero, value.One},
		{"0*1", value.Mul, value.Zero, value.One, value.Zero},
		{"1*1", value.Mul, value.One, value.One, value.One},
		{"1.*0", value.ElemMul, value.One, value.Zero, value.Zero},
		{"0/1", value.Div, value.Zero, value.One, value.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAtom_OutOfRange(t *testing.T) {
	_, err := value.Add(value.One, value.One)
	assert.ErrorIs(t, err, value.ErrAtomRange)

	_, err = value.Sub(value.Zero, value.One)
	assert.ErrorIs(t, err, value.ErrAtomRange)

	_, err = value.Neg(value.One)
	assert.ErrorIs(t, err, value.ErrAtomRange)

	_, err = value.Exp(value.One)
	assert.ErrorIs(t, err, value.ErrAtomRange)

	_, err = value.Div(value.One, value.Zero)
	assert.ErrorIs(t, err, value.ErrDivideByZero)
}

func TestAtom_Unary(t *testing.T) {
	v, err := value.Exp(value.Zero)
	require.NoError(t, err)
	assert.Equal(t, value.One, v)

	v, err = value.Neg(value.Zero)
	require.NoError(t, err)
	assert.Equal(t, value.Zero, v)

	assert.Equal(t, value.One, value.Transpose(value.One))
	assert.Equal(t, value.One, value.Sum(value.One))
}

func TestAtom_WithScalar(t *testing.T) {
	x := value.NewScalar[float32](3)

	v, err := value.Add(value.One, x)
	require.NoError(t, err)
	assert.Equal(t, value.NewScalar[float32](4), v)

	v, err = value.Sub(value.One, x)
	require.NoError(t, err)
	assert.Equal(t, value.NewScalar[float32](-2), v)

	v, err = value.Mul(value.One, x)
	require.NoError(t, err)
	assert.Equal(t, x, v)

	v, err = value.Mul(x, value.Zero)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = value.Div(value.One, value.NewScalar[float32](4))
	require.NoError(t, err)
	assert.Equal(t, value.NewScalar[float32](0.25), v)

	_, err = value.Div(x, value.Zero)
	assert.ErrorIs(t, err, value.ErrDivideByZero)
}

func TestAtom_DivideByNumericZero(t *testing.T) {
	v, err := value.Div(value.One, value.NewScalar[float64](0))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v.(value.Scalar[float64]).Value(), 1))

	v, err = value.Div(value.Zero, value.NewScalar[float64](0))
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	_, err = value.Div(value.One, value.StructuralZero[float64]())
	assert.ErrorIs(t, err, value.ErrDivideByZero)
}

func TestFromAtom(t *testing.T) {
	assert.Equal(t, float32(0), value.FromAtom[float32](value.Zero))
	assert.Equal(t, 1.0, value.FromAtom[float64](value.One))
}
