package autodiff

import (
	"github.com/m1gwings/treedrawer/tree"

	"github.com/born-ml/symgrad/internal/autodiff/ops"
)

// Tree renders the expression as an ASCII tree, one box per node.
// Leaves print their value, symbols their name, structural zeros "0".
func (e Expr) Tree() string {
	root := tree.NewTree(tree.NodeString(label(e.node)))
	grow(root, e.node)
	return root.String()
}

func grow(t *tree.Tree, n ops.Node) {
	if n.IsZero() {
		return
	}
	for _, child := range n.Children() {
		grow(t.AddChild(tree.NodeString(label(child))), child)
	}
}

func label(n ops.Node) string {
	if n.IsZero() {
		return "0"
	}
	switch x := n.(type) {
	case *ops.Constant:
		return x.String()
	case *ops.Symbol:
		return x.Name()
	}
	return n.Op()
}
