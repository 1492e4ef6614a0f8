// SPDX-License-Identifier: MIT

package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/tensor"
)

// A symmetric 3×3 matrix stores 6 components; contracting it with a vector
// over the shared index b is S^{ab} v_b.
func ExampleProd() {
	a, b := tensor.Upper("a", 3), tensor.Upper("b", 3)
	sym, _ := tensor.NewSymmetric(a, b)
	s, _ := tensor.New(tensor.MustAccessor(sym), []float64{1, 2, 3, 4, 5, 6})
	v, _ := tensor.New(tensor.MustAccessor(b.Lowered()), []float64{1, 0, -1})
	out := tensor.Zeros[float64](tensor.MustAccessor(a))

	if err := tensor.Prod(out, s, v); err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(s.Accessor().Size(), out.Data())
	// Output: 6 [-2 -3 -3]
}

// Writing F_{01} fixes F_{10} by antisymmetry; the diagonal is annihilated.
func Example_antisymmetric() {
	anti, _ := tensor.NewAntisymmetric(tensor.Lower("a", 3), tensor.Lower("b", 3))
	f := tensor.Zeros[float64](tensor.MustAccessor(anti))

	_ = f.Set(5, 0, 1)
	v, _ := f.Get(1, 0)
	fmt.Println(v)
	fmt.Println(f.Set(1, 2, 2))
	// Output:
	// -5
	// tensor.Set: [2 2]: tensor: write to an annihilated component
}

func ExampleApplyMetric() {
	eta, _ := tensor.NewLorentzianSign(1, tensor.Lower("m", 4), tensor.Lower("n", 4))
	g, _ := tensor.New[float64](tensor.MustAccessor(eta), nil)
	p, _ := tensor.New(tensor.MustAccessor(tensor.Upper("mu", 4)), []float64{5, 1, 2, 3})

	low, _ := tensor.ApplyMetric(p, g, []tensor.Natural{tensor.Upper("mu", 4)})
	fmt.Println(low.Naturals()[0], low.Data())
	// Output: _mu[4] [-5 1 2 3]
}
