package ops

import "github.com/born-ml/symgrad/internal/value"

// Neg represents -x. Its derivative recurses with the negated seed.
type Neg struct {
	x Node
}

// NewNeg creates a new Neg node.
func NewNeg(x Node) *Neg {
	return &Neg{x: x}
}

// Eval negates the operand value.
func (n *Neg) Eval() (value.Value, error) {
	v, err := n.x.Eval()
	if err != nil {
		return nil, err
	}
	out, err := value.Neg(v)
	if err != nil {
		return nil, &EvalError{Op: "neg", Err: err}
	}
	return out, nil
}

// Derivative returns d(x) seeded with -seed.
func (n *Neg) Derivative(names []string, seed Node) []Node {
	return n.x.Derivative(names, NewNeg(seed))
}

// IsZero reports whether the operand is zero.
func (n *Neg) IsZero() bool { return n.x.IsZero() }

// Op returns "neg".
func (n *Neg) Op() string { return "neg" }

// Children returns [x].
func (n *Neg) Children() []Node { return []Node{n.x} }

func (n *Neg) String() string {
	if n.IsZero() {
		return "0"
	}
	return "-" + n.x.String()
}
