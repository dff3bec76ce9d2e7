// Package autodiff implements symbolic automatic differentiation over
// expression trees.
//
// An Expr wraps an immutable ops.Node. Expressions are composed from
// constants and named Symbols with fluent operators; Derivative rewrites the
// tree into one new expression per requested name. Nothing is computed until
// Eval is called.
//
// Architecture:
//   - ops.Node: per-operator Eval and chain-rule Derivative
//   - value.Value: Atom {Zero, One}, Scalar and Matrix operands
//   - Atom Zero short-circuits products during evaluation; hinted matrix
//     zeros keep their shape
//
// Usage:
//
//	x := autodiff.Var(2.0, "x")
//	y := autodiff.Var(3.0, "y")
//	f := x.Mul(y).Add(x.Mul(x)) // f = x*y + x*x
//
//	d := f.Derivative([]string{"x", "y"}, autodiff.Scalar(1.0))
//	dx, _ := autodiff.EvalScalar[float64](d[0]) // 7
//	dy, _ := autodiff.EvalScalar[float64](d[1]) // 2
package autodiff

import (
	"github.com/born-ml/symgrad/internal/autodiff/ops"
	"github.com/born-ml/symgrad/internal/tensor"
	"github.com/born-ml/symgrad/internal/value"
)

// Expr is a handle to an immutable expression tree.
// Copying an Expr is cheap; sub-expressions are shared, never cloned.
type Expr struct {
	node ops.Node
}

// Wrap turns an ops.Node into an Expr.
func Wrap(n ops.Node) Expr {
	return Expr{node: n}
}

// Node returns the underlying node.
func (e Expr) Node() ops.Node {
	return e.node
}

// Const creates a literal expression. Its derivative is always Zero.
func Const(v value.Value) Expr {
	return Expr{node: ops.NewConstant(v)}
}

// Zero returns the structural zero expression.
func Zero() Expr {
	return Expr{node: ops.ZeroNode()}
}

// One returns the multiplicative identity expression.
//
// As a seed it cannot be negated or doubled: d(x-y)/dy and d(-x)/dx fail
// with value.ErrAtomRange. Use Scalar(1.0) there.
func One() Expr {
	return Expr{node: ops.OneNode()}
}

// Scalar creates a scalar literal.
func Scalar[T value.Element](v T) Expr {
	return Const(value.NewScalar(v))
}

// Matrix creates a matrix literal. A nil matrix is the structural zero.
func Matrix[T value.Element](m *tensor.Matrix[T]) Expr {
	if m == nil {
		return Const(value.StructuralZero[T]())
	}
	return Const(value.NewMatrix(m))
}

// Bind names an expression. Derivatives stop at the binding.
func Bind(e Expr, name string) Expr {
	return Expr{node: ops.NewSymbol(e.node, name)}
}

// Var creates a named scalar variable.
func Var[T value.Element](v T, name string) Expr {
	return Bind(Scalar(v), name)
}

// MatrixVar creates a named matrix variable.
func MatrixVar[T value.Element](m *tensor.Matrix[T], name string) Expr {
	return Bind(Matrix(m), name)
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr { return Expr{node: ops.NewAdd(e.node, o.node)} }

// Sub returns e - o.
func (e Expr) Sub(o Expr) Expr { return Expr{node: ops.NewSub(e.node, o.node)} }

// Mul returns the matrix (or scalar) product e * o.
func (e Expr) Mul(o Expr) Expr { return Expr{node: ops.NewMul(e.node, o.node)} }

// ElemMul returns the element-wise product e .* o.
func (e Expr) ElemMul(o Expr) Expr { return Expr{node: ops.NewElemMul(e.node, o.node)} }

// Div returns the element-wise quotient e / o.
func (e Expr) Div(o Expr) Expr { return Expr{node: ops.NewDiv(e.node, o.node)} }

// Neg returns -e.
func (e Expr) Neg() Expr { return Expr{node: ops.NewNeg(e.node)} }

// T returns the transpose of e.
func (e Expr) T() Expr { return Expr{node: ops.NewTranspose(e.node)} }

// Exp returns the element-wise exponential of e.
func (e Expr) Exp() Expr { return Expr{node: ops.NewExp(e.node)} }

// Sum reduces e to the sum of its elements.
func (e Expr) Sum() Expr { return Expr{node: ops.NewSum(e.node)} }

// Eval computes the value of the expression.
func (e Expr) Eval() (value.Value, error) {
	return e.node.Eval()
}

// MustEval is like Eval but panics on error.
func (e Expr) MustEval() value.Value {
	v, err := e.node.Eval()
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether e is structurally zero.
func (e Expr) IsZero() bool { return e.node.IsZero() }

// Op returns the operator label of the root node.
func (e Expr) Op() string { return e.node.Op() }

// Children returns the operand expressions of the root node.
func (e Expr) Children() []Expr {
	kids := e.node.Children()
	out := make([]Expr, len(kids))
	for i, k := range kids {
		out[i] = Expr{node: k}
	}
	return out
}

func (e Expr) String() string { return e.node.String() }

// Derivative returns, for each name, the expression for ∂e/∂name seeded
// with seed. Names not bound anywhere in e yield Zero.
func (e Expr) Derivative(names []string, seed Expr) []Expr {
	nodes := e.node.Derivative(names, seed.node)
	out := make([]Expr, len(nodes))
	for i, n := range nodes {
		out[i] = Expr{node: n}
	}
	return out
}

// EvalScalar evaluates e and converts the result to a single element.
func EvalScalar[T value.Element](e Expr) (T, error) {
	v, err := e.Eval()
	if err != nil {
		return 0, err
	}
	return value.ToScalar[T](v)
}

// EvalMatrix evaluates e and converts the result to a matrix of the given
// shape, materialising structural zeros and broadcasting scalars.
func EvalMatrix[T value.Element](e Expr, shape tensor.Shape) (*tensor.Matrix[T], error) {
	v, err := e.Eval()
	if err != nil {
		return nil, err
	}
	return value.ToMatrix[T](v, shape)
}
