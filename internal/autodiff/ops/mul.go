package ops

import "github.com/born-ml/symgrad/internal/value"

// ElemMul represents the element-wise (Hadamard) product a .* b.
//
// Derivative:
//   - d(a.*b)/da = b, so the seed for a is b .* seed
//   - d(a.*b)/db = a, so the seed for b is a .* seed
type ElemMul struct {
	lhs, rhs Node
	zero     bool
}

// NewElemMul creates a new ElemMul node.
func NewElemMul(lhs, rhs Node) *ElemMul {
	return &ElemMul{lhs: lhs, rhs: rhs, zero: lhs.IsZero() || rhs.IsZero()}
}

// Eval multiplies the operand values element-wise.
func (e *ElemMul) Eval() (value.Value, error) {
	if e.zero {
		return absorbing("elem_mul", value.OpElemMul, e.lhs, e.rhs)
	}
	return binary("elem_mul", value.OpElemMul, e.lhs, e.rhs)
}

// Derivative applies the element-wise product rule.
func (e *ElemMul) Derivative(names []string, seed Node) []Node {
	dl := e.lhs.Derivative(names, NewElemMul(e.rhs, seed))
	dr := e.rhs.Derivative(names, NewElemMul(e.lhs, seed))
	out := make([]Node, len(names))
	for i := range out {
		out[i] = NewAdd(dl[i], dr[i])
	}
	return out
}

// IsZero reports whether either operand is zero.
func (e *ElemMul) IsZero() bool { return e.zero }

// Op returns ".*".
func (e *ElemMul) Op() string { return value.OpElemMul.String() }

// Children returns [lhs, rhs].
func (e *ElemMul) Children() []Node { return []Node{e.lhs, e.rhs} }

func (e *ElemMul) String() string { return formatBinary(e, ".*", e.lhs, e.rhs) }
