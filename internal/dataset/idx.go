package dataset

import (
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// IDX magic numbers.
const (
	idxImagesMagic = 2051
	idxLabelsMagic = 2049
)

// openIDX opens path, falling back to path+".gz" and decompressing it.
func openIDX(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	gz, gzErr := os.Open(path + ".gz")
	if gzErr != nil {
		return nil, err
	}
	zr, err := gzip.NewReader(gz)
	if err != nil {
		gz.Close()
		return nil, fmt.Errorf("%s.gz: %w", path, err)
	}
	return &gzipFile{Reader: zr, file: gz}, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	return errors.Join(g.Reader.Close(), g.file.Close())
}

// readIDXImages reads an image file in IDX format.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes (28)
//	number of cols: 4 bytes (28)
//	pixel data: unsigned bytes (0-255)
//
// At most limit images are read when limit > 0.
func readIDXImages(r io.Reader, limit int) (images [][]byte, rows, cols int, err error) {
	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != idxImagesMagic {
		return nil, 0, 0, fmt.Errorf("%w: got %d, want %d", ErrBadMagic, magic, idxImagesMagic)
	}

	var numImages, numRows, numCols uint32
	for _, dim := range []*uint32{&numImages, &numRows, &numCols} {
		if err := binary.Read(r, binary.BigEndian, dim); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to read header: %w", err)
		}
	}

	n := int(numImages)
	if limit > 0 && n > limit {
		n = limit
	}

	imageSize := int(numRows * numCols)
	images = make([][]byte, n)
	for i := range images {
		images[i] = make([]byte, imageSize)
		if _, err := io.ReadFull(r, images[i]); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to read image %d: %w", i, err)
		}
	}

	return images, int(numRows), int(numCols), nil
}

// readIDXLabels reads a label file in IDX format.
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes (0-9)
func readIDXLabels(r io.Reader, limit int) ([]byte, error) {
	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != idxLabelsMagic {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadMagic, magic, idxLabelsMagic)
	}

	var numLabels uint32
	if err := binary.Read(r, binary.BigEndian, &numLabels); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	n := int(numLabels)
	if limit > 0 && n > limit {
		n = limit
	}

	labels := make([]byte, n)
	if _, err := io.ReadFull(r, labels); err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}

	return labels, nil
}
