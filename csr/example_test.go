// SPDX-License-Identifier: MIT

package csr_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/lvtensor/csr"
	"github.com/katalvlaran/lvtensor/tensor"
)

func ExampleProdCsrDense() {
	i, j := tensor.Upper("i", 2), tensor.Lower("j", 3)
	d, _ := csr.NewDynamic[float64](i, j)
	row0, _ := tensor.New(tensor.MustAccessor(j), []float64{1, 0, 2})
	row1, _ := tensor.New(tensor.MustAccessor(j), []float64{0, 3, 0})
	_ = d.PushBack(row0)
	_ = d.PushBack(row1)
	m, _ := csr.Freeze(3, d)

	x, _ := tensor.New(tensor.MustAccessor(j), []float64{1, 1, 1})
	y := tensor.Zeros[float64](tensor.MustAccessor(i))
	_ = csr.ProdCsrDense(y, m, x)
	fmt.Println(m.Coalesc(), y.Data())
	// Output: [0 2 3] [3 3]
}

func ExampleWrite() {
	i, j := tensor.Upper("i", 2), tensor.Lower("j", 2)
	m, _ := csr.New(i, []tensor.Natural{j}, []int{0, 1, 2}, [][]int{{1, 0}}, []float64{5, 6})

	var buf bytes.Buffer
	_ = csr.Write(&buf, m, csr.WithCodec(csr.CodecZstd))
	back, _ := csr.Read[float64](&buf, i, j)
	fmt.Println(back.Values(), back.Support().ToArray())
	// Output: [5 6] [0 1]
}
