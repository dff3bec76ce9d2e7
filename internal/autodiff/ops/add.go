package ops

import "github.com/born-ml/symgrad/internal/value"

// Add represents lhs + rhs.
//
// Derivative:
//   - d(a+b)/da = 1, so the seed flows unchanged to a
//   - d(a+b)/db = 1, so the seed flows unchanged to b
type Add struct {
	lhs, rhs Node
	zero     bool
}

// NewAdd creates a new Add node.
func NewAdd(lhs, rhs Node) *Add {
	return &Add{lhs: lhs, rhs: rhs, zero: lhs.IsZero() && rhs.IsZero()}
}

// Eval adds the operand values.
func (a *Add) Eval() (value.Value, error) {
	return binary("add", value.OpAdd, a.lhs, a.rhs)
}

// Derivative returns dl + dr for each name.
func (a *Add) Derivative(names []string, seed Node) []Node {
	dl := a.lhs.Derivative(names, seed)
	dr := a.rhs.Derivative(names, seed)
	out := make([]Node, len(names))
	for i := range out {
		out[i] = NewAdd(dl[i], dr[i])
	}
	return out
}

// IsZero reports whether both operands are zero.
func (a *Add) IsZero() bool { return a.zero }

// Op returns "+".
func (a *Add) Op() string { return value.OpAdd.String() }

// Children returns [lhs, rhs].
func (a *Add) Children() []Node { return []Node{a.lhs, a.rhs} }

func (a *Add) String() string { return formatBinary(a, "+", a.lhs, a.rhs) }
