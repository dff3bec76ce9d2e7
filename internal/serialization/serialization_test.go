package serialization_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/symgrad/internal/serialization"
	"github.com/born-ml/symgrad/internal/tensor"
)

func state(t *testing.T) map[string]*tensor.Matrix[float32] {
	t.Helper()
	w, err := tensor.FromSlice(2, 3, []float32{1, -2, 3.5, 4, 5, 6})
	require.NoError(t, err)
	b, err := tensor.ColumnVector([]float32{0.25, -0.5})
	require.NoError(t, err)
	return map[string]*tensor.Matrix[float32]{"fc.weight": w, "fc.bias": b}
}

func encode(t *testing.T, s map[string]*tensor.Matrix[float32], h serialization.Header) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, serialization.Write(&buf, s, h))
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	in := state(t)
	header := serialization.Header{
		ModelType: "Linear",
		Metadata:  map[string]string{"dataset": "mnist"},
		CheckpointMeta: &serialization.CheckpointMeta{
			Epoch: 3, Step: 3000, Loss: 0.12, Accuracy: 0.85, OptimizerType: "sgd", LR: 0.01,
		},
	}

	out, got, err := serialization.Read[float32](bytes.NewReader(encode(t, in, header)))
	require.NoError(t, err)

	require.Len(t, out, 2)
	for name, m := range in {
		require.Contains(t, out, name)
		assert.True(t, m.Equal(out[name]), name)
	}
	assert.Equal(t, "Linear", got.ModelType)
	assert.Equal(t, "float32", got.DType)
	assert.Equal(t, "mnist", got.Metadata["dataset"])
	require.NotNil(t, got.CheckpointMeta)
	assert.Equal(t, 3, got.CheckpointMeta.Epoch)
	assert.Equal(t, "sgd", got.CheckpointMeta.OptimizerType)

	// Matrices are laid out in name order.
	require.Len(t, got.Tensors, 2)
	assert.Equal(t, "fc.bias", got.Tensors[0].Name)
	assert.Equal(t, int64(8), got.Tensors[0].Size)
	assert.Equal(t, int64(8), got.Tensors[1].Offset)
}

func TestWrite_Deterministic(t *testing.T) {
	h := serialization.Header{CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, encode(t, state(t), h), encode(t, state(t), h))
}

func TestRead_DTypeMismatch(t *testing.T) {
	data := encode(t, state(t), serialization.Header{})
	_, _, err := serialization.Read[float64](bytes.NewReader(data))
	assert.ErrorIs(t, err, serialization.ErrDTypeMismatch)
}

func TestRead_Corrupted(t *testing.T) {
	data := encode(t, state(t), serialization.Header{})
	data[len(data)-1] ^= 0xff

	_, _, err := serialization.Read[float32](bytes.NewReader(data))
	assert.ErrorIs(t, err, serialization.ErrChecksumMismatch)
}

func TestRead_BadMagic(t *testing.T) {
	data := encode(t, state(t), serialization.Header{})
	copy(data, "BORN")

	_, _, err := serialization.Read[float32](bytes.NewReader(data))
	assert.ErrorIs(t, err, serialization.ErrInvalidMagic)
}

func TestRead_Truncated(t *testing.T) {
	data := encode(t, state(t), serialization.Header{})
	_, _, err := serialization.Read[float32](bytes.NewReader(data[:10]))
	assert.Error(t, err)
}

func TestWrite_RejectsBadNames(t *testing.T) {
	m := tensor.Zeros[float32](tensor.Shape{1, 1})
	for _, name := range []string{"", "../etc", "a/b", "nul\x00"} {
		var buf bytes.Buffer
		err := serialization.Write(&buf, map[string]*tensor.Matrix[float32]{name: m}, serialization.Header{})

		var verr *serialization.ValidationError
		assert.True(t, errors.As(err, &verr), "name %q: %v", name, err)
	}
}

func TestValidateTensorOffsets(t *testing.T) {
	tests := []struct {
		name    string
		tensors []serialization.TensorMeta
		size    int64
		errType string
	}{
		{"ok", []serialization.TensorMeta{{Name: "a", Size: 8}, {Name: "b", Offset: 8, Size: 8}}, 16, ""},
		{"overlap", []serialization.TensorMeta{{Name: "a", Size: 8}, {Name: "b", Offset: 4, Size: 8}}, 16, "offset_overlap"},
		{"out of bounds", []serialization.TensorMeta{{Name: "a", Offset: 8, Size: 16}}, 16, "out_of_bounds"},
		{"negative", []serialization.TensorMeta{{Name: "a", Offset: -1, Size: 4}}, 16, "negative_offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := serialization.ValidateTensorOffsets(tt.tensors, tt.size)
			if tt.errType == "" {
				assert.NoError(t, err)
				return
			}
			var verr *serialization.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.errType, verr.Type)
		})
	}
}

func TestValidateHeader_SizeMismatch(t *testing.T) {
	h := &serialization.Header{Tensors: []serialization.TensorMeta{
		{Name: "w", Shape: []int{2, 2}, Size: 8},
	}}
	var verr *serialization.ValidationError
	require.ErrorAs(t, serialization.ValidateHeader(h, tensor.Float32, 16), &verr)
	assert.Equal(t, "size_mismatch", verr.Type)
}

// A shape whose element count wraps around to zero must not pass as an
// empty tensor.
func TestValidateHeader_OverflowingShape(t *testing.T) {
	h := &serialization.Header{Tensors: []serialization.TensorMeta{
		{Name: "w", Shape: []int{1 << 62, 4}, Size: 0},
	}}
	var verr *serialization.ValidationError
	require.ErrorAs(t, serialization.ValidateHeader(h, tensor.Float32, 16), &verr)
	assert.Equal(t, "size_mismatch", verr.Type)
	assert.Contains(t, verr.Details, "exceeds")
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.symg")
	require.NoError(t, serialization.Save(path, state(t), serialization.Header{ModelType: "Linear"}))

	out, h, err := serialization.Load[float32](path)
	require.NoError(t, err)
	assert.Equal(t, "Linear", h.ModelType)
	assert.InDelta(t, 3.5, out["fc.weight"].At(0, 2), 0)
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := serialization.Load[float32](filepath.Join(t.TempDir(), "absent.symg"))
	assert.Error(t, err)
}
