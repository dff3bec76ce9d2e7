package ops

import "github.com/born-ml/symgrad/internal/value"

// Constant is a literal leaf (number, matrix or atom).
// Its derivative with respect to any name is Zero, whatever the seed.
type Constant struct {
	v value.Value
}

// NewConstant creates a literal node.
func NewConstant(v value.Value) *Constant {
	return &Constant{v: v}
}

// Value returns the wrapped value.
func (c *Constant) Value() value.Value { return c.v }

// Eval returns the wrapped value.
func (c *Constant) Eval() (value.Value, error) { return c.v, nil }

// Derivative returns Zero for every name.
func (c *Constant) Derivative(names []string, _ Node) []Node { return zeros(len(names)) }

// IsZero reports whether the literal is the additive identity.
func (c *Constant) IsZero() bool { return c.v.IsZero() }

// Op returns "const".
func (c *Constant) Op() string { return "const" }

// Children returns nil.
func (c *Constant) Children() []Node { return nil }

func (c *Constant) String() string { return c.v.String() }
