// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/young"
	"github.com/spf13/cobra"
)

func newYoungCmd() *cobra.Command {
	var (
		shape  string
		extent int
		list   bool
	)
	cmd := &cobra.Command{
		Use:   "young",
		Short: "Describe a Young shape: standard tableaux and tensor dimension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := parseShape(shape)
			if err != nil {
				return err
			}
			t, err := young.New(rows...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shape %v rank %d standard %d\n", t.Shape(), t.Rank(), t.Count())
			if extent > 0 {
				fmt.Fprintf(out, "dimension(%d) %d\n", extent, t.Dimension(extent))
			}
			if list {
				for i, s := range t.Standard().All() {
					fmt.Fprintf(out, "#%d\n%s\n", i, s)
				}
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&shape, "shape", "", "row lengths, e.g. 2,1")
	f.IntVar(&extent, "extent", 0, "print the component count over this extent")
	f.BoolVar(&list, "list", false, "list every standard tableau")
	_ = cmd.MarkFlagRequired("shape")

	return cmd
}
