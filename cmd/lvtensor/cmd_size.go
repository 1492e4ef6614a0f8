// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/katalvlaran/lvtensor/young"
	"github.com/spf13/cobra"
)

// kindSpec is the flag set describing one index kind.
type kindSpec struct {
	kind   string
	rank   int
	extent int
	shape  string
	q      int
}

func newSizeCmd() *cobra.Command {
	var s kindSpec
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Print the compressed size of an index kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := s.build()
			if err != nil {
				return err
			}
			stored := "stored"
			if k.Implicit() {
				stored = "implicit"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s size=%d %s\n", k, k.Size(), stored)

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&s.kind, "kind", "full", "natural | symmetric | antisymmetric | diagonal | identity | lorentzian | full | young")
	f.IntVar(&s.rank, "rank", 2, "number of naturals (ignored for young)")
	f.IntVar(&s.extent, "extent", 3, "extent of every natural")
	f.StringVar(&s.shape, "shape", "", "young shape, e.g. 2,1")
	f.IntVar(&s.q, "q", 1, "negative entries of a lorentzian sign")

	return cmd
}

// parseShape reads a comma separated list of row lengths.
func parseShape(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []int
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", s, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func lowers(rank, extent int) []tensor.Natural {
	ns := make([]tensor.Natural, rank)
	for i := range ns {
		ns[i] = tensor.Lower("i"+strconv.Itoa(i), extent)
	}

	return ns
}

func (s kindSpec) build() (tensor.Kind, error) {
	if s.rank < 0 {
		return nil, fmt.Errorf("rank %d must be >= 0", s.rank)
	}
	ns := lowers(s.rank, s.extent)
	switch strings.ToLower(s.kind) {
	case "natural":
		if s.rank != 1 {
			return nil, fmt.Errorf("a natural has rank 1, got %d", s.rank)
		}
		return ns[0], nil
	case "symmetric":
		return tensor.NewSymmetric(ns...)
	case "antisymmetric":
		return tensor.NewAntisymmetric(ns...)
	case "diagonal":
		return tensor.NewDiagonal(ns...)
	case "identity":
		return tensor.NewIdentity(ns...)
	case "lorentzian":
		return tensor.NewLorentzianSign(s.q, ns...)
	case "full":
		return tensor.NewFull(ns...)
	case "young":
		shape, err := parseShape(s.shape)
		if err != nil {
			return nil, err
		}
		t, err := young.New(shape...)
		if err != nil {
			return nil, err
		}
		return tensor.NewYoung(t, lowers(t.Rank(), s.extent)...)
	}

	return nil, fmt.Errorf("unknown kind %q", s.kind)
}
