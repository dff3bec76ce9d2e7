package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/symgrad/internal/tensor"
	"github.com/born-ml/symgrad/internal/value"
)

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// The weight matrix has shape [fanOut, fanIn] so that it left-multiplies a
// column input.
func Xavier[T value.Element](fanIn, fanOut int, rng *rand.Rand) *tensor.Matrix[T] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	m, err := tensor.FromFunc(fanOut, fanIn, func(_, _ int) T {
		return T((rng.Float64()*2.0 - 1.0) * bound)
	})
	if err != nil {
		panic(err)
	}
	return m
}

// Zeros creates a zero-filled matrix, used for bias initialization.
func Zeros[T value.Element](rows, cols int) *tensor.Matrix[T] {
	return tensor.Zeros[T](tensor.Shape{rows, cols})
}
