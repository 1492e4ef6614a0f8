// SPDX-License-Identifier: MIT

package tensor_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvtensor/tensor"
)

func BenchmarkProdSymmetricContraction(b *testing.B) {
	const n = 12
	s, _ := tensor.NewSymmetric(tensor.Upper("a", n), tensor.Upper("b", n), tensor.Upper("c", n))
	x := tensor.Zeros[float64](tensor.MustAccessor(s))
	for i := range x.Data() {
		x.Data()[i] = float64(i%7) - 3
	}
	v := tensor.Zeros[float64](tensor.MustAccessor(tensor.Lower("c", n)))
	v.Fill(0.5)
	outKind, _ := tensor.NewSymmetric(tensor.Upper("a", n), tensor.Upper("b", n))
	out := tensor.Zeros[float64](tensor.MustAccessor(outKind))

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := tensor.Prod(out, x, v, tensor.WithWorkers(workers), tensor.WithChunk(16)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAccessorToCompressed(b *testing.B) {
	anti, _ := tensor.NewAntisymmetric(tensor.Lower("a", 8), tensor.Lower("b", 8), tensor.Lower("c", 8))
	acc := tensor.MustAccessor(tensor.Upper("x", 4), anti)
	m := []int{3, 7, 2, 5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = acc.ToCompressed(m)
	}
}
