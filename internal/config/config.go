// Package config loads the training configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Valid option values.
var (
	ValidFormats    = []string{"idx", "csv", "synthetic"}
	ValidOptimizers = []string{"sgd", "adam"}
	ValidLogLevels  = []string{"debug", "info", "warn", "error"}
	ValidLogFormats = []string{"json", "console"}
)

// Config holds all settings of a training run.
type Config struct {
	Data      DataConfig      `yaml:"data"`
	Training  TrainingConfig  `yaml:"training"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DataConfig selects and bounds the dataset.
type DataConfig struct {
	Format       string `yaml:"format"`        // idx, csv, synthetic
	Dir          string `yaml:"dir"`           // directory with the IDX files
	CSVFile      string `yaml:"csv_file"`      // Kaggle-style CSV, format csv only
	TrainSamples int    `yaml:"train_samples"` // 0 = all
	TestSamples  int    `yaml:"test_samples"`  // 0 = all
}

// TrainingConfig controls the gradient-descent loop.
type TrainingConfig struct {
	Epochs    int   `yaml:"epochs"`
	Seed      int64 `yaml:"seed"`       // weight init and synthetic data
	EvalEvery int   `yaml:"eval_every"` // samples between test evaluations, 0 = once per epoch

	Resume     string `yaml:"resume"`     // parameters to start from, empty = fresh init
	Checkpoint string `yaml:"checkpoint"` // where to save the trained parameters, empty = don't
}

// OptimizerConfig selects the parameter update rule.
type OptimizerConfig struct {
	Name     string  `yaml:"name"` // sgd, adam
	LR       float64 `yaml:"lr"`
	Momentum float64 `yaml:"momentum"` // sgd only
	Beta1    float64 `yaml:"beta1"`    // adam only
	Beta2    float64 `yaml:"beta2"`    // adam only
	Eps      float64 `yaml:"eps"`      // adam only
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the configuration of the reference MNIST run:
// 1000 training samples, 100 test samples, plain SGD with lr 0.01.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Format:       "idx",
			Dir:          "data",
			TrainSamples: 1000,
			TestSamples:  100,
		},
		Training: TrainingConfig{
			Epochs: 1,
			Seed:   42,
		},
		Optimizer: OptimizerConfig{
			Name:  "sgd",
			LR:    0.01,
			Beta1: 0.9,
			Beta2: 0.999,
			Eps:   1e-8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("SYMGRAD_DATA_DIR"); dir != "" {
		c.Data.Dir = dir
	}
	if level := os.Getenv("SYMGRAD_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks the configuration for values the training loop cannot use.
func (c *Config) Validate() error {
	if !slices.Contains(ValidFormats, c.Data.Format) {
		return fmt.Errorf("invalid data format %q (valid: %v)", c.Data.Format, ValidFormats)
	}
	if c.Data.Format == "csv" && c.Data.CSVFile == "" {
		return fmt.Errorf("data.csv_file is required for format csv")
	}
	if c.Data.TrainSamples < 0 || c.Data.TestSamples < 0 {
		return fmt.Errorf("sample limits must be >= 0")
	}
	if c.Data.Format == "synthetic" && (c.Data.TrainSamples == 0 || c.Data.TestSamples == 0) {
		return fmt.Errorf("synthetic data needs explicit train_samples and test_samples")
	}
	if c.Training.Epochs < 1 {
		return fmt.Errorf("training.epochs must be >= 1")
	}
	if c.Training.EvalEvery < 0 {
		return fmt.Errorf("training.eval_every must be >= 0")
	}
	if !slices.Contains(ValidOptimizers, c.Optimizer.Name) {
		return fmt.Errorf("invalid optimizer %q (valid: %v)", c.Optimizer.Name, ValidOptimizers)
	}
	if c.Optimizer.LR <= 0 {
		return fmt.Errorf("optimizer.lr must be > 0")
	}
	if c.Optimizer.Momentum < 0 || c.Optimizer.Momentum >= 1 {
		return fmt.Errorf("optimizer.momentum must be in [0, 1)")
	}
	if c.Optimizer.Beta1 < 0 || c.Optimizer.Beta1 >= 1 || c.Optimizer.Beta2 < 0 || c.Optimizer.Beta2 >= 1 {
		return fmt.Errorf("optimizer betas must be in [0, 1)")
	}
	if !slices.Contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level %q (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if !slices.Contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format %q (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	return nil
}
