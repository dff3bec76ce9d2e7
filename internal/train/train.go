// Package train runs gradient descent on a linear digit classifier using
// symbolic derivatives: y = W·x + b is differentiated with the seed
// 2(y - onehot) for both parameters after every sample.
package train

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/born-ml/symgrad/internal/autodiff"
	"github.com/born-ml/symgrad/internal/config"
	"github.com/born-ml/symgrad/internal/dataset"
	"github.com/born-ml/symgrad/internal/nn"
	"github.com/born-ml/symgrad/internal/optim"
	"github.com/born-ml/symgrad/internal/serialization"
)

// EpochResult summarizes one pass over the training set.
type EpochResult struct {
	Epoch    int     // 1-based
	Loss     float64 // mean squared error over the training samples
	Accuracy float64 // test accuracy in [0, 1] after the epoch
}

// Result is the outcome of a training run.
type Result struct {
	Epochs  []EpochResult
	Model   *nn.Linear[float32]
	Samples int // training samples per epoch
}

// Run loads the data described by cfg and trains the classifier.
// The context is checked between samples; on cancellation Run returns the
// epochs completed so far together with ctx.Err().
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	trainSet, testSet, err := LoadData(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset loaded",
		zap.String("format", cfg.Data.Format),
		zap.Int("train", trainSet.Len()),
		zap.Int("test", testSet.Len()))

	rng := rand.New(rand.NewSource(cfg.Training.Seed))
	model := nn.NewLinear[float32]("linear", dataset.ImageSize, dataset.Classes, rng)
	if path := cfg.Training.Resume; path != "" {
		header, err := nn.Load[float32](path, model)
		if err != nil {
			return nil, fmt.Errorf("resume: %w", err)
		}
		logger.Info("parameters restored", zap.String("path", path), zap.Time("created", header.CreatedAt))
	}

	result, err := Fit(ctx, cfg, model, trainSet, testSet, logger)
	if err != nil {
		return result, err
	}

	if path := cfg.Training.Checkpoint; path != "" {
		if err := SaveCheckpoint(path, cfg, result); err != nil {
			return result, err
		}
		logger.Info("checkpoint saved", zap.String("path", path))
	}
	return result, nil
}

// SaveCheckpoint writes the trained parameters together with the state of
// the last completed epoch.
func SaveCheckpoint(path string, cfg *config.Config, result *Result) error {
	meta := &serialization.CheckpointMeta{
		OptimizerType: cfg.Optimizer.Name,
		LR:            cfg.Optimizer.LR,
	}
	if n := len(result.Epochs); n > 0 {
		last := result.Epochs[n-1]
		meta.Epoch = last.Epoch
		meta.Loss = last.Loss
		meta.Accuracy = last.Accuracy
		meta.Step = int64(last.Epoch) * int64(result.Samples)
	}
	return nn.Save[float32](result.Model, path, "Linear", meta)
}

// Fit trains model on trainSet and reports test accuracy after every epoch.
func Fit(ctx context.Context, cfg *config.Config, model *nn.Linear[float32], trainSet, testSet *dataset.Dataset, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opt := NewOptimizer(cfg.Optimizer, model.Parameters())
	result := &Result{Model: model, Samples: trainSet.Len()}

	for epoch := 1; epoch <= cfg.Training.Epochs; epoch++ {
		start := time.Now()
		var total float64

		for i := range trainSet.Len() {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			loss, err := step(model, opt, trainSet, i)
			if err != nil {
				return result, fmt.Errorf("epoch %d sample %d: %w", epoch, i, err)
			}
			total += loss

			if every := cfg.Training.EvalEvery; every > 0 && (i+1)%every == 0 {
				acc, err := Evaluate(ctx, model, testSet)
				if err != nil {
					return result, err
				}
				logger.Debug("progress",
					zap.Int("epoch", epoch),
					zap.Int("sample", i+1),
					zap.Float64("accuracy", acc))
			}
		}

		acc, err := Evaluate(ctx, model, testSet)
		if err != nil {
			return result, err
		}

		res := EpochResult{Epoch: epoch, Loss: total / float64(max(trainSet.Len(), 1)), Accuracy: acc}
		result.Epochs = append(result.Epochs, res)
		logger.Info("epoch complete",
			zap.Int("epoch", epoch),
			zap.Float64("loss", res.Loss),
			zap.Float64("accuracy", res.Accuracy),
			zap.Duration("elapsed", time.Since(start)))
	}

	return result, nil
}

// step performs one gradient-descent update on sample i and returns its loss.
func step(model *nn.Linear[float32], opt optim.Optimizer[float32], ds *dataset.Dataset, i int) (float64, error) {
	input, err := dataset.Input[float32](ds, i)
	if err != nil {
		return 0, err
	}
	target, err := dataset.OneHot[float32](ds.Labels[i], dataset.Classes)
	if err != nil {
		return 0, err
	}

	y := model.Forward(autodiff.Matrix(input))
	out, err := autodiff.EvalMatrix[float32](y, target.Shape())
	if err != nil {
		return 0, err
	}

	loss, err := nn.MSE(out, target)
	if err != nil {
		return 0, err
	}
	seed, err := nn.MSESeed(out, target)
	if err != nil {
		return 0, err
	}

	grads, err := nn.Backward(y, autodiff.Matrix(seed), model.Parameters())
	if err != nil {
		return 0, err
	}
	if err := opt.Step(grads); err != nil {
		return 0, err
	}
	return float64(loss), nil
}

// Evaluate returns the fraction of samples whose largest output matches
// the label.
func Evaluate(ctx context.Context, model *nn.Linear[float32], ds *dataset.Dataset) (float64, error) {
	if ds.Len() == 0 {
		return 0, nil
	}

	correct := 0
	for i := range ds.Len() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		input, err := dataset.Input[float32](ds, i)
		if err != nil {
			return 0, err
		}
		pred, err := nn.Argmax[float32](model.Forward(autodiff.Matrix(input)), dataset.Classes)
		if err != nil {
			return 0, err
		}
		if pred == ds.Labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(ds.Len()), nil
}

// NewOptimizer builds the optimizer named in cfg.
func NewOptimizer(cfg config.OptimizerConfig, params []*nn.Parameter[float32]) optim.Optimizer[float32] {
	if cfg.Name == "adam" {
		return optim.NewAdam(params, optim.AdamConfig[float32]{
			LR:    float32(cfg.LR),
			Betas: [2]float32{float32(cfg.Beta1), float32(cfg.Beta2)},
			Eps:   float32(cfg.Eps),
		})
	}
	return optim.NewSGD(params, optim.SGDConfig[float32]{
		LR:       float32(cfg.LR),
		Momentum: float32(cfg.Momentum),
	})
}

// LoadData returns the train and test sets selected by cfg.
//
// For csv the file is split: the last TestSamples rows form the test set.
func LoadData(cfg *config.Config) (trainSet, testSet *dataset.Dataset, err error) {
	d := cfg.Data
	switch d.Format {
	case "synthetic":
		return dataset.Synthetic(d.TrainSamples, cfg.Training.Seed),
			dataset.Synthetic(d.TestSamples, cfg.Training.Seed+1), nil

	case "csv":
		limit := 0
		if d.TrainSamples > 0 && d.TestSamples > 0 {
			limit = d.TrainSamples + d.TestSamples
		}
		all, err := dataset.LoadMNISTCSV(d.CSVFile, limit)
		if err != nil {
			return nil, nil, err
		}
		return split(all, d.TestSamples)

	default:
		trainSet, err = dataset.LoadMNIST(d.Dir, true, d.TrainSamples)
		if err != nil {
			return nil, nil, fmt.Errorf("train set: %w", err)
		}
		testSet, err = dataset.LoadMNIST(d.Dir, false, d.TestSamples)
		if err != nil {
			return nil, nil, fmt.Errorf("test set: %w", err)
		}
		return trainSet, testSet, nil
	}
}

func split(all *dataset.Dataset, test int) (*dataset.Dataset, *dataset.Dataset, error) {
	if test == 0 || test >= all.Len() {
		return nil, nil, fmt.Errorf("cannot hold out %d of %d samples", test, all.Len())
	}
	cut := all.Len() - test
	return &dataset.Dataset{Images: all.Images[:cut], Labels: all.Labels[:cut]},
		&dataset.Dataset{Images: all.Images[cut:], Labels: all.Labels[cut:]}, nil
}

