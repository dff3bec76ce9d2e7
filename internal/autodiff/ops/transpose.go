package ops

import "github.com/born-ml/symgrad/internal/value"

// Transpose represents x^T. Scalars and atoms transpose to themselves.
//
// Derivative: the operand's derivative is taken with the seed as given and
// the result is transposed, so for a leaf X with seed shaped like X^T the
// returned expression is shaped like X.
type Transpose struct {
	x Node
}

// NewTranspose creates a new Transpose node.
func NewTranspose(x Node) *Transpose {
	return &Transpose{x: x}
}

// Eval transposes the operand value.
func (t *Transpose) Eval() (value.Value, error) {
	v, err := t.x.Eval()
	if err != nil {
		return nil, err
	}
	return value.Transpose(v), nil
}

// Derivative returns (dx)^T for each name.
func (t *Transpose) Derivative(names []string, seed Node) []Node {
	dx := t.x.Derivative(names, seed)
	out := make([]Node, len(names))
	for i := range out {
		out[i] = NewTranspose(dx[i])
	}
	return out
}

// IsZero reports whether the operand is zero.
func (t *Transpose) IsZero() bool { return t.x.IsZero() }

// Op returns "T".
func (t *Transpose) Op() string { return "T" }

// Children returns [x].
func (t *Transpose) Children() []Node { return []Node{t.x} }

func (t *Transpose) String() string {
	if t.IsZero() {
		return "0"
	}
	return t.x.String() + "ᵀ"
}
