package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestVersionCmd(t *testing.T) {
	cmd, buf := newTestCmd()
	versionCmd.Run(cmd, nil)
	assert.Equal(t, "symgrad "+version+"\n", buf.String())
}

func TestEvalCmd_Product(t *testing.T) {
	logger = zap.NewNop()
	cmd, buf := newTestCmd()

	require.NoError(t, runEval(cmd, []string{"product"}))

	out := buf.String()
	assert.Contains(t, out, "== product")
	assert.Contains(t, out, `f = (("x"=2 * "y"=3) + ("x"=2 * "x"=2))`)
	assert.Contains(t, out, "  = 10\n")
	assert.Contains(t, out, "df/dx = 7\n")
	assert.Contains(t, out, "df/dy = 2\n")
}

func TestEvalCmd_All(t *testing.T) {
	logger = zap.NewNop()
	showTree = true
	defer func() { showTree = false }()
	cmd, buf := newTestCmd()

	require.NoError(t, runEval(cmd, nil))

	for _, name := range exampleNames() {
		assert.Contains(t, buf.String(), "== "+name+":")
	}
	assert.Contains(t, buf.String(), "df/dw = [1 2 3; 2 4 6]")
}

func TestEvalCmd_Unknown(t *testing.T) {
	logger = zap.NewNop()
	cmd, _ := newTestCmd()

	err := runEval(cmd, []string{"nope"})
	assert.ErrorContains(t, err, `unknown example "nope"`)
}

func TestTrainCmd_Synthetic(t *testing.T) {
	logger = zap.NewNop()
	verbose = true
	defer func() { verbose = false }()

	configPath = filepath.Join(t.TempDir(), "train.yaml")
	defer func() { configPath = "symgrad.yaml" }()
	cfg := `
data:
  format: synthetic
  train_samples: 20
  test_samples: 10
optimizer:
  lr: 0.001
training:
  epochs: 2
`
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o600))

	savePath = filepath.Join(t.TempDir(), "linear.symg")
	defer func() { savePath = "" }()

	cmd, buf := newTestCmd()
	require.NoError(t, runTrain(cmd, nil))
	assert.Contains(t, buf.String(), "epoch 1: loss")
	assert.Contains(t, buf.String(), "epoch 2: loss")
	assert.FileExists(t, savePath)
}

func TestTrainCmd_InvalidConfig(t *testing.T) {
	logger = zap.NewNop()
	configPath = filepath.Join(t.TempDir(), "bad.yaml")
	defer func() { configPath = "symgrad.yaml" }()
	require.NoError(t, os.WriteFile(configPath, []byte("optimizer:\n  name: rmsprop\n"), 0o600))

	cmd, _ := newTestCmd()
	assert.ErrorContains(t, runTrain(cmd, nil), "invalid optimizer")
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("warn", "json")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))

	_, err = newLogger("loud", "console")
	assert.Error(t, err)
}
