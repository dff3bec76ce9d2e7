package autodiff_test

import (
	"fmt"

	"github.com/born-ml/symgrad/autodiff"
	"github.com/born-ml/symgrad/tensor"
)

func Example() {
	x := autodiff.Var(5.0, "x")
	y := autodiff.Var(2.0, "y")
	f := x.Mul(y).Add(x.Mul(x))

	d := f.Derivative([]string{"x", "y"}, autodiff.One())
	dx, _ := autodiff.EvalScalar[float64](d[0])
	dy, _ := autodiff.EvalScalar[float64](d[1])
	fmt.Println(dx, dy)
	// Output: 12 5
}

func ExampleGradients() {
	w, _ := tensor.FromSlice(1, 2, []float64{3, 4})
	x, _ := tensor.ColumnVector([]float64{1, 2})
	out := autodiff.MatrixVar(w, "w").Mul(autodiff.MatrixVar(x, "x"))

	grads, err := autodiff.Gradients(out,
		autodiff.Seed{Name: "w", Seed: autodiff.One()},
		autodiff.Seed{Name: "x", Seed: autodiff.One()},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	dw, _ := autodiff.EvalMatrix[float64](grads["w"], tensor.Shape{1, 2})
	dx, _ := autodiff.EvalMatrix[float64](grads["x"], tensor.Shape{2, 1})
	fmt.Println(dw.Data(), dx.Data())
	// Output: [1 2] [3 4]
}
