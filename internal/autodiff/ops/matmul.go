package ops

import "github.com/born-ml/symgrad/internal/value"

// Mul represents the matrix (or scalar) product lhs @ rhs.
//
// Derivative, for C = A @ B:
//   - the seed for A is seed @ B^T
//   - the seed for B is A^T @ seed
//
// Shapes: A [m,n], B [n,k], seed [m,k]
//   - seed @ B^T: [m,k] @ [k,n] = [m,n] ✓
//   - A^T @ seed: [n,m] @ [m,k] = [n,k] ✓
type Mul struct {
	lhs, rhs Node
	zero     bool
}

// NewMul creates a new Mul node.
func NewMul(lhs, rhs Node) *Mul {
	return &Mul{lhs: lhs, rhs: rhs, zero: lhs.IsZero() || rhs.IsZero()}
}

// Eval multiplies the operand values.
func (m *Mul) Eval() (value.Value, error) {
	if m.zero {
		return absorbing("mul", value.OpMul, m.lhs, m.rhs)
	}
	return binary("mul", value.OpMul, m.lhs, m.rhs)
}

// Derivative applies the matrix product rule.
func (m *Mul) Derivative(names []string, seed Node) []Node {
	dl := m.lhs.Derivative(names, NewMul(seed, NewTranspose(m.rhs)))
	dr := m.rhs.Derivative(names, NewMul(NewTranspose(m.lhs), seed))
	out := make([]Node, len(names))
	for i := range out {
		out[i] = NewAdd(dl[i], dr[i])
	}
	return out
}

// IsZero reports whether either operand is zero.
func (m *Mul) IsZero() bool { return m.zero }

// Op returns "*".
func (m *Mul) Op() string { return value.OpMul.String() }

// Children returns [lhs, rhs].
func (m *Mul) Children() []Node { return []Node{m.lhs, m.rhs} }

func (m *Mul) String() string { return formatBinary(m, "*", m.lhs, m.rhs) }
