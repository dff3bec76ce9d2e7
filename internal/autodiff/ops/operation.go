// Package ops defines the expression node contract and its implementations
// for symbolic automatic differentiation.
//
// Each node implements the Node interface, which provides:
//   - Eval: computes the node's value from its operands
//   - Derivative: builds, per requested name, a new expression for the
//     seeded partial derivative (a vector-Jacobian product)
//
// Derivative construction performs no numeric work: it only rearranges
// expressions, borrowing operands of the original tree.
//
// Supported nodes:
//   - Constant: literal value, derivative is Zero
//   - Symbol: named leaf, derivative is indicator * seed
//   - Add, Sub: seed passed unchanged to both operands
//   - Neg: seed negated
//   - Mul: matrix product (d(A@B)/dA = seed@B^T, d(A@B)/dB = A^T@seed)
//   - ElemMul: Hadamard product (seed .* other operand)
//   - Div: elementwise quotient rule
//   - Transpose: derivative transposed
//   - Exp: seed .* exp(x), reusing the node itself
//   - Sum: seed passed through to the operand
package ops

import (
	"fmt"

	"github.com/born-ml/symgrad/internal/value"
)

// Node represents an immutable expression in the computation tree.
type Node interface {
	// Eval computes the value of the expression. Shared sub-expressions are
	// recomputed on every call.
	Eval() (value.Value, error)

	// Derivative returns, for each name, a new expression whose value is
	// ∂(node)/∂(name) combined with seed by the chain rule.
	// The result has the same length and order as names.
	//
	// Example for Add:
	//   names: ["x", "y"]
	//   returns: [dl_x + dr_x, dl_y + dr_y] (seed flows unchanged to both operands)
	Derivative(names []string, seed Node) []Node

	// IsZero reports whether the node is structurally known to be the
	// additive identity. It never evaluates anything.
	IsZero() bool

	// Op returns a short operator label (e.g. "+", "exp", "symbol").
	Op() string

	// Children returns the operand nodes.
	Children() []Node

	String() string
}

// EvalError records which operator failed during evaluation.
type EvalError struct {
	Op  string // Operator label of the failing node
	Err error  // Underlying failure (shape mismatch, divide by zero, ...)
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return fmt.Sprintf("eval %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying failure.
func (e *EvalError) Unwrap() error {
	return e.Err
}

// zeroNode is shared by every Zero-derivative branch.
var zeroNode Node = &Constant{v: value.Zero}

// ZeroNode returns the constant Atom Zero expression.
func ZeroNode() Node { return zeroNode }

// OneNode returns the constant Atom One expression.
func OneNode() Node { return &Constant{v: value.One} }

// zeros returns n zero-derivative branches.
func zeros(n int) []Node {
	out := make([]Node, n)
	for i := range out {
		out[i] = zeroNode
	}
	return out
}

// binary evaluates both operands and combines them with op.
func binary(label string, op value.Op, lhs, rhs Node) (value.Value, error) {
	lv, err := lhs.Eval()
	if err != nil {
		return nil, err
	}
	rv, err := rhs.Eval()
	if err != nil {
		return nil, err
	}
	return combine(label, op, lv, rv)
}

// absorbing evaluates a product or quotient known to be zero.
//
// Zero operands are evaluated first. Atom Zero absorbs the other operand,
// which is then never evaluated. Any other zero (a shape-hinted matrix, a
// numeric 0) is combined with the other operand so its kind and shape carry
// through.
func absorbing(label string, op value.Op, lhs, rhs Node) (value.Value, error) {
	nodes := [2]Node{lhs, rhs}
	var vals [2]value.Value
	for i, n := range nodes {
		if !n.IsZero() {
			continue
		}
		v, err := n.Eval()
		if err != nil {
			return nil, err
		}
		if a, ok := v.(value.Atom); ok && a == value.Zero {
			return value.Zero, nil
		}
		vals[i] = v
	}
	for i, n := range nodes {
		if vals[i] != nil {
			continue
		}
		v, err := n.Eval()
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return combine(label, op, vals[0], vals[1])
}

func combine(label string, op value.Op, lv, rv value.Value) (value.Value, error) {
	out, err := apply(op, lv, rv)
	if err != nil {
		return nil, &EvalError{Op: label, Err: err}
	}
	return out, nil
}

func apply(op value.Op, lv, rv value.Value) (value.Value, error) {
	switch op {
	case value.OpAdd:
		return value.Add(lv, rv)
	case value.OpSub:
		return value.Sub(lv, rv)
	case value.OpMul:
		return value.Mul(lv, rv)
	case value.OpElemMul:
		return value.ElemMul(lv, rv)
	case value.OpDiv:
		return value.Div(lv, rv)
	}
	return nil, fmt.Errorf("%w: operator %s", value.ErrUnsupportedCombination, op)
}

// formatBinary prints (lhs op rhs); structural zeros print as 0.
func formatBinary(n Node, op string, lhs, rhs Node) string {
	if n.IsZero() {
		return "0"
	}
	return "(" + lhs.String() + " " + op + " " + rhs.String() + ")"
}
