package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/born-ml/symgrad/internal/tensor"
)

// Write encodes state to w. Header fields describing the data section
// (FormatVersion, DType, Tensors) are filled in; CreatedAt defaults to now.
func Write[T tensor.Float](w io.Writer, state map[string]*tensor.Matrix[T], header Header) error {
	names := make([]string, 0, len(state))
	for name := range state {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		if state[name] == nil {
			return &ValidationError{Type: "nil_matrix", Tensor: name, Details: "no data"}
		}
		names = append(names, name)
	}
	slices.Sort(names)

	var data bytes.Buffer
	header.Tensors = make([]TensorMeta, 0, len(names))
	for _, name := range names {
		m := state[name]
		offset := int64(data.Len())
		if err := binary.Write(&data, binary.LittleEndian, m.Data()); err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   name,
			Shape:  []int(m.Shape()),
			Offset: offset,
			Size:   int64(data.Len()) - offset,
		})
	}

	header.FormatVersion = FormatVersion
	header.DType = tensor.DataTypeOf[T]().String()
	if header.CreatedAt.IsZero() {
		header.CreatedAt = time.Now().UTC()
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	if header.CheckpointMeta != nil {
		flags |= FlagHasCheckpoint
	}

	var out bytes.Buffer
	out.WriteString(MagicBytes)
	_ = binary.Write(&out, binary.LittleEndian, uint32(FormatVersion))
	_ = binary.Write(&out, binary.LittleEndian, flags)
	_ = binary.Write(&out, binary.LittleEndian, uint64(len(headerJSON)))
	checksum := ComputeChecksum(data.Bytes())
	out.Write(checksum[:])
	out.Write(headerJSON)
	out.Write(make([]byte, padding(int64(out.Len()))))

	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(data.Bytes()); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	return nil
}

// Save writes state to a file at path.
func Save[T tensor.Float](path string, state map[string]*tensor.Matrix[T], header Header) (err error) {
	//nolint:gosec // G304: path comes from the user, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return Write(file, state, header)
}
