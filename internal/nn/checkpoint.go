package nn

import (
	"fmt"

	"github.com/born-ml/symgrad/internal/serialization"
	"github.com/born-ml/symgrad/internal/tensor"
	"github.com/born-ml/symgrad/internal/value"
)

// StateDict returns the parameter matrices keyed by parameter name.
// The matrices are shared, not copied.
func StateDict[T value.Element](params []*Parameter[T]) map[string]*tensor.Matrix[T] {
	state := make(map[string]*tensor.Matrix[T], len(params))
	for _, p := range params {
		state[p.name] = p.data
	}
	return state
}

// LoadStateDict copies state into params in place. Every parameter must be
// present with its current shape; extra entries are ignored.
func LoadStateDict[T value.Element](params []*Parameter[T], state map[string]*tensor.Matrix[T]) error {
	// Check everything first so a failed load leaves params untouched.
	for _, p := range params {
		m, ok := state[p.name]
		if !ok {
			return fmt.Errorf("parameter %q missing from state", p.name)
		}
		if !m.Shape().Equal(p.Shape()) {
			return fmt.Errorf("parameter %q: %w", p.name,
				&tensor.ShapeError{Op: "load", Left: p.Shape(), Right: m.Shape()})
		}
	}
	for _, p := range params {
		copy(p.data.Data(), state[p.name].Data())
	}
	return nil
}

// Save writes the parameters of module to path.
//
// Example:
//
//	model := nn.NewLinear[float32]("linear", 784, 10, rng)
//	err := nn.Save(model, "model.symg", "Linear", nil)
func Save[T value.Element](module Module[T], path, modelType string, checkpoint *serialization.CheckpointMeta) error {
	header := serialization.Header{
		ModelType:      modelType,
		CheckpointMeta: checkpoint,
	}
	if err := serialization.Save(path, StateDict(module.Parameters()), header); err != nil {
		return fmt.Errorf("failed to save %s: %w", modelType, err)
	}
	return nil
}

// Load reads parameters from path into a module of the same architecture.
func Load[T value.Element](path string, module Module[T]) (serialization.Header, error) {
	state, header, err := serialization.Load[T](path)
	if err != nil {
		return serialization.Header{}, err
	}
	if err := LoadStateDict(module.Parameters(), state); err != nil {
		return serialization.Header{}, err
	}
	return header, nil
}
