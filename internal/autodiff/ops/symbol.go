package ops

import (
	"fmt"

	"github.com/born-ml/symgrad/internal/value"
)

// Symbol binds an expression to a name. Differentiation stops here: the
// derivative with respect to k is (k == name ? One : Zero) * seed.
//
// Identity is by name only; two symbols with the same name are
// indistinguishable to the differentiator.
type Symbol struct {
	name string
	node Node
}

// NewSymbol binds node to name.
func NewSymbol(node Node, name string) *Symbol {
	return &Symbol{name: name, node: node}
}

// Name returns the bound name.
func (s *Symbol) Name() string { return s.name }

// Inner returns the bound expression.
func (s *Symbol) Inner() Node { return s.node }

// Eval evaluates the bound expression.
func (s *Symbol) Eval() (value.Value, error) { return s.node.Eval() }

// Derivative returns indicator * seed for each name.
func (s *Symbol) Derivative(names []string, seed Node) []Node {
	out := make([]Node, len(names))
	for i, k := range names {
		indicator := value.Zero
		if k == s.name {
			indicator = value.One
		}
		out[i] = NewMul(NewConstant(indicator), seed)
	}
	return out
}

// IsZero returns false: a symbol is a variable.
func (s *Symbol) IsZero() bool { return false }

// Op returns "symbol".
func (s *Symbol) Op() string { return "symbol" }

// Children returns the bound expression.
func (s *Symbol) Children() []Node { return []Node{s.node} }

func (s *Symbol) String() string { return fmt.Sprintf("%q=%s", s.name, s.node) }
