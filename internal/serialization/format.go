package serialization

import (
	"time"

	"github.com/born-ml/symgrad/internal/tensor"
)

// Format constants.
const (
	MagicBytes      = "SYMG"
	FormatVersion   = 1
	HeaderAlignment = 64 // matrix data starts on a 64-byte boundary
	ChecksumSize    = 32 // SHA-256
	fixedHeaderSize = 4 + 4 + 4 + 8 + ChecksumSize
)

// Flags.
const (
	FlagHasMetadata   uint32 = 1 << 0 // custom metadata included
	FlagHasCheckpoint uint32 = 1 << 1 // training state included
)

// Header is the JSON header of a .symg file.
type Header struct {
	FormatVersion  int               `json:"format_version"`
	ModelType      string            `json:"model_type"` // e.g. "Linear"
	DType          string            `json:"dtype"`      // float32 or float64
	CreatedAt      time.Time         `json:"created_at"`
	Tensors        []TensorMeta      `json:"tensors"`
	Metadata       map[string]string `json:"metadata"`
	CheckpointMeta *CheckpointMeta   `json:"checkpoint,omitempty"`
}

// CheckpointMeta records where training stopped.
type CheckpointMeta struct {
	Epoch         int     `json:"epoch"`
	Step          int64   `json:"step"`
	Loss          float64 `json:"loss"`
	Accuracy      float64 `json:"accuracy"`
	OptimizerType string  `json:"optimizer_type"` // "sgd", "adam"
	LR            float64 `json:"lr"`
}

// TensorMeta describes one matrix in the data section.
type TensorMeta struct {
	Name   string `json:"name"`   // e.g. "linear.weight"
	Shape  []int  `json:"shape"`  // [rows, cols]
	Offset int64  `json:"offset"` // bytes from the start of the data section
	Size   int64  `json:"size"`   // bytes
}

func padding(pos int64) int64 {
	return (HeaderAlignment - pos%HeaderAlignment) % HeaderAlignment
}

func parseDType(s string) (tensor.DataType, bool) {
	switch s {
	case tensor.Float32.String():
		return tensor.Float32, true
	case tensor.Float64.String():
		return tensor.Float64, true
	default:
		return 0, false
	}
}
