package ops

import "github.com/born-ml/symgrad/internal/value"

// Sub represents lhs - rhs.
//
// The seed is passed unchanged to both operands; the right contribution is
// subtracted at the output instead of negating the seed.
type Sub struct {
	lhs, rhs Node
	zero     bool
}

// NewSub creates a new Sub node.
func NewSub(lhs, rhs Node) *Sub {
	return &Sub{lhs: lhs, rhs: rhs, zero: lhs.IsZero() && rhs.IsZero()}
}

// Eval subtracts the operand values.
func (s *Sub) Eval() (value.Value, error) {
	return binary("sub", value.OpSub, s.lhs, s.rhs)
}

// Derivative returns dl - dr for each name.
func (s *Sub) Derivative(names []string, seed Node) []Node {
	dl := s.lhs.Derivative(names, seed)
	dr := s.rhs.Derivative(names, seed)
	out := make([]Node, len(names))
	for i := range out {
		out[i] = NewSub(dl[i], dr[i])
	}
	return out
}

// IsZero reports whether both operands are zero.
func (s *Sub) IsZero() bool { return s.zero }

// Op returns "-".
func (s *Sub) Op() string { return value.OpSub.String() }

// Children returns [lhs, rhs].
func (s *Sub) Children() []Node { return []Node{s.lhs, s.rhs} }

func (s *Sub) String() string { return formatBinary(s, "-", s.lhs, s.rhs) }
