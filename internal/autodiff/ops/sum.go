package ops

import "github.com/born-ml/symgrad/internal/value"

// Sum reduces its operand to the scalar sum of all elements.
//
// Derivative: the seed passes straight through to the operand. A scalar seed
// broadcasts over the operand's elements when the derivative is evaluated.
type Sum struct {
	x Node
}

// NewSum creates a new Sum node.
func NewSum(x Node) *Sum {
	return &Sum{x: x}
}

// Eval sums the operand value.
func (s *Sum) Eval() (value.Value, error) {
	v, err := s.x.Eval()
	if err != nil {
		return nil, err
	}
	return value.Sum(v), nil
}

// Derivative returns d(x) seeded with the unchanged seed.
func (s *Sum) Derivative(names []string, seed Node) []Node {
	return s.x.Derivative(names, seed)
}

// IsZero reports whether the operand is zero.
func (s *Sum) IsZero() bool { return s.x.IsZero() }

// Op returns "sum".
func (s *Sum) Op() string { return "sum" }

// Children returns [x].
func (s *Sum) Children() []Node { return []Node{s.x} }

func (s *Sum) String() string {
	if s.IsZero() {
		return "0"
	}
	return "sum(" + s.x.String() + ")"
}
