package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/symgrad/internal/autodiff"
	"github.com/born-ml/symgrad/internal/tensor"
)

var showTree bool

var evalCmd = &cobra.Command{
	Use:   "eval [example...]",
	Short: "Evaluate built-in expressions and their derivatives",
	Long: `Builds each example expression, evaluates it, differentiates it with
respect to its symbols and evaluates the derivatives.

Examples: ` + strings.Join(exampleNames(), ", ") + `

With no arguments every example is shown.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&showTree, "tree", false, "Draw derivative expression trees")
}

// example is a catalogue entry: an expression, the names to differentiate
// and the seed.
type example struct {
	name  string
	about string
	build func() (expr autodiff.Expr, names []string, seed autodiff.Expr, err error)
}

var examples = []example{
	{"product", "x*y + x*x at x=2, y=3", func() (autodiff.Expr, []string, autodiff.Expr, error) {
		x := autodiff.Var(2.0, "x")
		y := autodiff.Var(3.0, "y")
		return x.Mul(y).Add(x.Mul(x)), []string{"x", "y"}, autodiff.Scalar(1.0), nil
	}},
	{"quotient", "x / (x + y) at x=1, y=2", func() (autodiff.Expr, []string, autodiff.Expr, error) {
		x := autodiff.Var(1.0, "x")
		y := autodiff.Var(2.0, "y")
		return x.Div(x.Add(y)), []string{"x", "y"}, autodiff.Scalar(1.0), nil
	}},
	{"simplify", "(x*y + x*x) / (y + x) at x=2, y=3", func() (autodiff.Expr, []string, autodiff.Expr, error) {
		x := autodiff.Var(2.0, "x")
		y := autodiff.Var(3.0, "y")
		return x.Mul(y).Add(x.Mul(x)).Div(y.Add(x)), []string{"x", "y"}, autodiff.Scalar(1.0), nil
	}},
	{"exp", "5 * exp(4x + 1) at x=[0 0.1; 0.2 0.3]", func() (autodiff.Expr, []string, autodiff.Expr, error) {
		m, err := tensor.FromSlice(2, 2, []float64{0, 0.1, 0.2, 0.3})
		if err != nil {
			return autodiff.Expr{}, nil, autodiff.Expr{}, err
		}
		x := autodiff.MatrixVar(m, "x")
		g := autodiff.Scalar(4.0).Mul(x).Add(autodiff.Scalar(1.0)).Exp()
		return autodiff.Scalar(5.0).Mul(g), []string{"x"}, autodiff.Scalar(1.0), nil
	}},
	{"softmax", "exp(x) / sum(exp(x)) at x=[1; 2; 3]", func() (autodiff.Expr, []string, autodiff.Expr, error) {
		m, err := tensor.ColumnVector([]float64{1, 2, 3})
		if err != nil {
			return autodiff.Expr{}, nil, autodiff.Expr{}, err
		}
		e := autodiff.MatrixVar(m, "x").Exp()
		return e.Div(e.Sum()), []string{"x"}, autodiff.Scalar(1.0), nil
	}},
	{"linear", "w·x + b with seed [1; 2]", func() (autodiff.Expr, []string, autodiff.Expr, error) {
		w, err := tensor.FromSlice(2, 3, []float64{1, 0, -1, 2, 1, 0})
		if err != nil {
			return autodiff.Expr{}, nil, autodiff.Expr{}, err
		}
		b, err := tensor.ColumnVector([]float64{0.5, -0.5})
		if err != nil {
			return autodiff.Expr{}, nil, autodiff.Expr{}, err
		}
		x, err := tensor.ColumnVector([]float64{1, 2, 3})
		if err != nil {
			return autodiff.Expr{}, nil, autodiff.Expr{}, err
		}
		seed, err := tensor.ColumnVector([]float64{1, 2})
		if err != nil {
			return autodiff.Expr{}, nil, autodiff.Expr{}, err
		}
		y := autodiff.MatrixVar(w, "w").Mul(autodiff.Matrix(x)).Add(autodiff.MatrixVar(b, "b"))
		return y, []string{"w", "b"}, autodiff.Matrix(seed), nil
	}},
}

func exampleNames() []string {
	names := make([]string, len(examples))
	for i, ex := range examples {
		names[i] = ex.name
	}
	return names
}

func runEval(cmd *cobra.Command, args []string) error {
	selected := examples
	if len(args) > 0 {
		selected = nil
		for _, name := range args {
			i := slices.IndexFunc(examples, func(ex example) bool { return ex.name == name })
			if i < 0 {
				return fmt.Errorf("unknown example %q (available: %s)", name, strings.Join(exampleNames(), ", "))
			}
			selected = append(selected, examples[i])
		}
	}

	for _, ex := range selected {
		if err := printExample(cmd.OutOrStdout(), ex); err != nil {
			return fmt.Errorf("%s: %w", ex.name, err)
		}
	}
	return nil
}

func printExample(w io.Writer, ex example) error {
	expr, names, seed, err := ex.build()
	if err != nil {
		return err
	}
	logger.Debug("evaluating example", zap.String("name", ex.name), zap.Strings("wrt", names))

	v, err := expr.Eval()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "== %s: %s\n", ex.name, ex.about)
	fmt.Fprintf(w, "f = %s\n", expr)
	fmt.Fprintf(w, "  = %s\n", v)

	for i, d := range expr.Derivative(names, seed) {
		dv, err := d.Eval()
		if err != nil {
			return fmt.Errorf("d/d%s: %w", names[i], err)
		}
		fmt.Fprintf(w, "df/d%s = %s\n", names[i], dv)
		if showTree {
			fmt.Fprintln(w, d.Tree())
		}
	}
	fmt.Fprintln(w)
	return nil
}
