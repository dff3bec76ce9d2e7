// Package dataset loads labelled image data for the training loop: the MNIST
// IDX files, a Kaggle-style CSV export, or a small synthetic set.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/born-ml/symgrad/internal/tensor"
	"github.com/born-ml/symgrad/internal/value"
)

// Classes is the number of digit labels.
const Classes = 10

// ImageSize is the number of pixels of a 28×28 digit image.
const ImageSize = 28 * 28

// Dataset errors.
var (
	ErrBadMagic      = errors.New("invalid IDX magic number")
	ErrCountMismatch = errors.New("image and label counts differ")
	ErrLabelRange    = errors.New("label out of range")
)

// Dataset holds images with pixels normalized to [0, 1] and their labels.
type Dataset struct {
	Images [][]float32 // [num_samples, ImageSize]
	Labels []int       // [num_samples]
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Labels)
}

// Input returns sample i as an ImageSize×1 column.
func Input[T value.Element](d *Dataset, i int) (*tensor.Matrix[T], error) {
	img := d.Images[i]
	return tensor.FromFunc(len(img), 1, func(r, _ int) T { return T(img[r]) })
}

// OneHot returns a classes×1 column with a one at label.
func OneHot[T value.Element](label, classes int) (*tensor.Matrix[T], error) {
	if label < 0 || label >= classes {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrLabelRange, label, classes)
	}
	return tensor.FromFunc(classes, 1, func(r, _ int) T {
		if r == label {
			return 1
		}
		return 0
	})
}

// LoadMNIST loads MNIST data from the official IDX binary files.
//
// Expected files in dataDir (optionally gzip-compressed with a .gz suffix):
//   - train-images-idx3-ubyte (or t10k-images-idx3-ubyte for test)
//   - train-labels-idx1-ubyte (or t10k-labels-idx1-ubyte for test)
//
// At most maxSamples samples are loaded when maxSamples > 0.
func LoadMNIST(dataDir string, train bool, maxSamples int) (*Dataset, error) {
	prefix := "t10k"
	if train {
		prefix = "train"
	}

	imgFile, err := openIDX(filepath.Join(dataDir, prefix+"-images-idx3-ubyte"))
	if err != nil {
		return nil, fmt.Errorf("failed to open images: %w", err)
	}
	defer imgFile.Close()

	imagesRaw, rows, cols, err := readIDXImages(imgFile, maxSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	if rows*cols != ImageSize {
		return nil, fmt.Errorf("unexpected image size %dx%d", rows, cols)
	}

	lblFile, err := openIDX(filepath.Join(dataDir, prefix+"-labels-idx1-ubyte"))
	if err != nil {
		return nil, fmt.Errorf("failed to open labels: %w", err)
	}
	defer lblFile.Close()

	labelsRaw, err := readIDXLabels(lblFile, maxSamples)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}

	if len(imagesRaw) != len(labelsRaw) {
		return nil, fmt.Errorf("%w: %d images, %d labels", ErrCountMismatch, len(imagesRaw), len(labelsRaw))
	}

	d := &Dataset{
		Images: make([][]float32, len(imagesRaw)),
		Labels: make([]int, len(labelsRaw)),
	}
	for i, raw := range imagesRaw {
		d.Images[i] = normalize(raw)
		d.Labels[i] = int(labelsRaw[i])
		if d.Labels[i] >= Classes {
			return nil, fmt.Errorf("%w: sample %d has label %d", ErrLabelRange, i, d.Labels[i])
		}
	}
	return d, nil
}

// LoadMNISTCSV loads MNIST data from a CSV file.
//
// CSV Format (Kaggle-style):
//
//	label,pixel0,pixel1,...,pixel783
//	5,0,0,12,...,0
func LoadMNISTCSV(filename string, maxSamples int) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("CSV file is empty or missing header")
	}

	records = records[1:]
	if maxSamples > 0 && len(records) > maxSamples {
		records = records[:maxSamples]
	}

	d := &Dataset{
		Images: make([][]float32, len(records)),
		Labels: make([]int, len(records)),
	}
	for i, record := range records {
		if len(record) != ImageSize+1 {
			return nil, fmt.Errorf("invalid record length at row %d: got %d, want %d", i+1, len(record), ImageSize+1)
		}

		label, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("invalid label at row %d: %w", i+1, err)
		}
		if label < 0 || label >= Classes {
			return nil, fmt.Errorf("%w: row %d has label %d", ErrLabelRange, i+1, label)
		}
		d.Labels[i] = label

		raw := make([]byte, ImageSize)
		for j := range raw {
			pixel, err := strconv.Atoi(record[j+1])
			if err != nil || pixel < 0 || pixel > 255 {
				return nil, fmt.Errorf("invalid pixel at row %d, column %d: %q", i+1, j+1, record[j+1])
			}
			raw[j] = byte(pixel)
		}
		d.Images[i] = normalize(raw)
	}
	return d, nil
}

// Synthetic creates a small labelled dataset for running the pipeline
// without MNIST files.
//
// Each digit d is a bright horizontal band starting at row 2d, with
// per-sample noise drawn from seed. It is NOT realistic MNIST data.
func Synthetic(n int, seed int64) *Dataset {
	rng := rand.New(rand.NewSource(seed))
	d := &Dataset{
		Images: make([][]float32, n),
		Labels: make([]int, n),
	}

	for i := range n {
		label := i % Classes
		img := make([]float32, ImageSize)
		for j := range img {
			img[j] = float32(rng.Float64() * 0.1)
		}
		startRow := label * 2
		for row := startRow; row < startRow+8 && row < 28; row++ {
			for col := 5; col < 23; col++ {
				img[row*28+col] = float32(0.7 + rng.Float64()*0.3)
			}
		}
		d.Images[i] = img
		d.Labels[i] = label
	}
	return d
}

// normalize maps 0-255 pixels to [0, 1].
func normalize(raw []byte) []float32 {
	out := make([]float32, len(raw))
	for j, p := range raw {
		out[j] = float32(p) / 255.0
	}
	return out
}
