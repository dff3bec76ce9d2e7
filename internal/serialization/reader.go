package serialization

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/symgrad/internal/tensor"
)

// Read decodes a state dictionary from r.
//
// The checksum, the element type and every matrix entry are verified before
// any matrix is returned.
func Read[T tensor.Float](r io.Reader) (map[string]*tensor.Matrix[T], Header, error) {
	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != MagicBytes {
		return nil, Header{}, fmt.Errorf("%w: got %q, expected %q", ErrInvalidMagic, magic, MagicBytes)
	}

	var version, flags uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read version: %w", err)
	}
	if version != FormatVersion {
		return nil, Header{}, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}
	if err := binary.Read(r, binary.LittleEndian, &flags); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read flags: %w", err)
	}

	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, Header{}, ErrHeaderTooLarge
	}

	var stored [ChecksumSize]byte
	if _, err := io.ReadFull(r, stored[:]); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read checksum: %w", err)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read header: %w", err)
	}
	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, Header{}, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize
	pad := padding(int64(fixedHeaderSize) + int64(headerSize))
	if _, err := io.CopyN(io.Discard, r, pad); err != nil {
		return nil, Header{}, fmt.Errorf("failed to read padding: %w", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Header{}, fmt.Errorf("failed to read data: %w", err)
	}
	if err := ValidateChecksum(ComputeChecksum(data), stored); err != nil {
		return nil, Header{}, err
	}

	want := tensor.DataTypeOf[T]()
	got, ok := parseDType(header.DType)
	if !ok || got != want {
		return nil, Header{}, fmt.Errorf("%w: file holds %q, requested %s", ErrDTypeMismatch, header.DType, want)
	}
	if err := ValidateHeader(&header, want, int64(len(data))); err != nil {
		return nil, Header{}, fmt.Errorf("validation failed: %w", err)
	}

	state := make(map[string]*tensor.Matrix[T], len(header.Tensors))
	for _, meta := range header.Tensors {
		shape := tensor.Shape(meta.Shape)
		values := make([]T, shape.NumElements())
		chunk := bytes.NewReader(data[meta.Offset : meta.Offset+meta.Size])
		if err := binary.Read(chunk, binary.LittleEndian, values); err != nil {
			return nil, Header{}, fmt.Errorf("failed to decode %s: %w", meta.Name, err)
		}
		m, err := tensor.FromSlice(shape.Rows(), shape.Cols(), values)
		if err != nil {
			return nil, Header{}, fmt.Errorf("failed to build %s: %w", meta.Name, err)
		}
		state[meta.Name] = m
	}

	return state, header, nil
}

// Load reads a state dictionary from the file at path.
func Load[T tensor.Float](path string) (map[string]*tensor.Matrix[T], Header, error) {
	//nolint:gosec // G304: path comes from the user, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, Header{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Read[T](bufio.NewReader(file))
}
