package ops

import "github.com/born-ml/symgrad/internal/value"

// Div represents the element-wise quotient a / b.
//
// Derivative (quotient rule d(a/b) = da/b - a·db/b²):
//   - the seed for a is seed / b
//   - the seed for b is (a / (b .* b)) .* seed
//   - the two contributions are combined with Sub
//
// A denominator that is the structural zero fails evaluation with
// value.ErrDivideByZero, so Div is only short-circuited when b is not zero.
type Div struct {
	lhs, rhs Node
	zero     bool
}

// NewDiv creates a new Div node.
func NewDiv(lhs, rhs Node) *Div {
	return &Div{lhs: lhs, rhs: rhs, zero: lhs.IsZero() && !rhs.IsZero()}
}

// Eval divides the operand values element-wise.
func (d *Div) Eval() (value.Value, error) {
	if d.zero {
		return absorbing("div", value.OpDiv, d.lhs, d.rhs)
	}
	return binary("div", value.OpDiv, d.lhs, d.rhs)
}

// Derivative applies the quotient rule.
func (d *Div) Derivative(names []string, seed Node) []Node {
	dl := d.lhs.Derivative(names, NewDiv(seed, d.rhs))
	dr := d.rhs.Derivative(names, NewElemMul(NewDiv(d.lhs, NewElemMul(d.rhs, d.rhs)), seed))
	out := make([]Node, len(names))
	for i := range out {
		out[i] = NewSub(dl[i], dr[i])
	}
	return out
}

// IsZero reports whether the numerator is zero over a non-zero denominator.
func (d *Div) IsZero() bool { return d.zero }

// Op returns "/".
func (d *Div) Op() string { return value.OpDiv.String() }

// Children returns [lhs, rhs].
func (d *Div) Children() []Node { return []Node{d.lhs, d.rhs} }

func (d *Div) String() string { return formatBinary(d, "/", d.lhs, d.rhs) }
