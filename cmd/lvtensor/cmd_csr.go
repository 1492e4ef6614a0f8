// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtensor/csr"
	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/spf13/cobra"
)

// The CLI packs plain matrices: one head slot per row over a single tail.
func matrixIndices(rows, cols int) (tensor.Natural, tensor.Natural) {
	return tensor.Upper("row", rows), tensor.Lower("col", cols)
}

func newCsrCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csr",
		Short: "Pack, inspect and multiply CSR matrices",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "pack <matrix.txt> <out.lvcsr>",
			Short: "Pack a whitespace separated dense matrix",
			Args:  cobra.ExactArgs(2),
			RunE:  a.runPack,
		},
		&cobra.Command{
			Use:   "inspect <file.lvcsr>",
			Short: "Print the header of a packed file",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runInspect,
		},
		&cobra.Command{
			Use:   "unpack <file.lvcsr>",
			Short: "Print a packed matrix densely",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runUnpack,
		},
		&cobra.Command{
			Use:   "prod <file.lvcsr> <v0,v1,...>",
			Short: "Multiply a packed matrix by a vector",
			Args:  cobra.ExactArgs(2),
			RunE:  a.runProd,
		},
	)

	return cmd
}

// readMatrix parses one row per non-empty line.
func readMatrix(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		row, err := parseFloats(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %d columns, want %d", line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty matrix")
	}

	return rows, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func buildCsr(rows [][]float64) (*csr.Csr[float64], error) {
	head, col := matrixIndices(len(rows), len(rows[0]))
	d, err := csr.NewDynamic[float64](head, col)
	if err != nil {
		return nil, err
	}
	acc := tensor.MustAccessor(col)
	for _, r := range rows {
		dense, err := tensor.New(acc, r)
		if err != nil {
			return nil, err
		}
		if err = d.PushBack(dense); err != nil {
			return nil, err
		}
	}

	return csr.Freeze(d.NNZ(), d)
}

func (a *app) runPack(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()
	rows, err := readMatrix(in)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	c, err := buildCsr(rows)
	if err != nil {
		return err
	}
	opts, err := a.cfg.CsrOptions(a.log)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = csr.Write(&buf, c, opts...); err != nil {
		return err
	}
	if err = os.WriteFile(args[1], buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "packed %dx%d nnz=%d codec=%s bytes=%d\n",
		len(rows), len(rows[0]), c.NNZ(), a.cfg.Csr.Codec, buf.Len())

	return nil
}

// loadPacked reads a packed matrix, taking its layout from the header.
func loadPacked(path string) (*csr.Csr[float64], csr.Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, csr.Header{}, err
	}
	h, err := csr.Inspect(bytes.NewReader(data))
	if err != nil {
		return nil, h, err
	}
	if len(h.TailExtents) != 1 {
		return nil, h, fmt.Errorf("%s: %d tails, the CLI handles matrices only", path, len(h.TailExtents))
	}
	head, col := matrixIndices(h.HeadSize, h.TailExtents[0])
	c, err := csr.Read[float64](bytes.NewReader(data), head, col)

	return c, h, err
}

func (a *app) runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	h, err := csr.Inspect(bytes.NewReader(data))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "codec=%s slots=%d tails=%v nnz=%d raw=%d stored=%d crc=%08x\n",
		h.Codec, h.HeadSize, h.TailExtents, h.NNZ, h.RawLen, h.StoredLen, h.Checksum)
	if len(h.TailExtents) != 1 {
		return nil
	}
	c, _, err := loadPacked(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "rows nonempty=%d of %d\n", c.Support().GetCardinality(), c.HeadSize())

	return nil
}

func (a *app) runUnpack(cmd *cobra.Command, args []string) error {
	c, h, err := loadPacked(args[0])
	if err != nil {
		return err
	}
	head, col := matrixIndices(h.HeadSize, h.TailExtents[0])
	out := tensor.Zeros[float64](tensor.MustAccessor(head, col))
	if err = csr.ToDense(out, c); err != nil {
		return err
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	data, cols := out.Data(), h.TailExtents[0]
	for r := 0; r < h.HeadSize; r++ {
		for j, v := range data[r*cols : (r+1)*cols] {
			if j > 0 {
				w.WriteByte(' ')
			}
			w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		w.WriteByte('\n')
	}

	return w.Flush()
}

func (a *app) runProd(cmd *cobra.Command, args []string) error {
	c, h, err := loadPacked(args[0])
	if err != nil {
		return err
	}
	vals, err := parseFloats(strings.Split(args[1], ","))
	if err != nil {
		return fmt.Errorf("vector: %w", err)
	}
	head, col := matrixIndices(h.HeadSize, h.TailExtents[0])
	x, err := tensor.New(tensor.MustAccessor(col), vals)
	if err != nil {
		return fmt.Errorf("vector of %d values for %d columns: %w", len(vals), h.TailExtents[0], err)
	}
	y := tensor.Zeros[float64](tensor.MustAccessor(head))
	opts, err := a.cfg.CsrOptions(a.log)
	if err != nil {
		return err
	}
	if err = csr.ProdCsrDense(y, c, x, opts...); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Trim(fmt.Sprint(y.Data()), "[]"))

	return nil
}
