package ops

import "github.com/born-ml/symgrad/internal/value"

// Exp represents the element-wise exponential exp(x).
//
// Derivative: d(exp(x))/dx = exp(x), so the operand is seeded with
// seed .* e where e is this node. The exponential is recomputed lazily when
// the derivative expression is evaluated.
type Exp struct {
	x Node
}

// NewExp creates a new Exp node.
func NewExp(x Node) *Exp {
	return &Exp{x: x}
}

// Eval computes exp of the operand value.
func (e *Exp) Eval() (value.Value, error) {
	v, err := e.x.Eval()
	if err != nil {
		return nil, err
	}
	out, err := value.Exp(v)
	if err != nil {
		return nil, &EvalError{Op: "exp", Err: err}
	}
	return out, nil
}

// Derivative returns d(x) seeded with seed .* exp(x).
func (e *Exp) Derivative(names []string, seed Node) []Node {
	return e.x.Derivative(names, NewElemMul(seed, e))
}

// IsZero returns false: exp is never the additive identity.
func (e *Exp) IsZero() bool { return false }

// Op returns "exp".
func (e *Exp) Op() string { return "exp" }

// Children returns [x].
func (e *Exp) Children() []Node { return []Node{e.x} }

func (e *Exp) String() string { return "exp(" + e.x.String() + ")" }
