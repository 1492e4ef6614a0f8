// SPDX-License-Identifier: MIT

package csr_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvtensor/csr"
	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

// banded has every tail coordinate set to 1 in every slot, which
// compresses well.
func banded(t *testing.T) *csr.Csr[float64] {
	t.Helper()
	const slots, extent = 256, 16
	coalesc := make([]int, slots+1)
	idx := make([]int, 0, slots*extent)
	values := make([]float64, 0, slots*extent)
	for h := range slots {
		for x := range extent {
			idx = append(idx, x)
			values = append(values, 1)
		}
		coalesc[h+1] = len(values)
	}
	c, err := csr.New(tensor.Upper("h", slots), []tensor.Natural{tensor.Lower("x", extent)}, coalesc, [][]int{idx}, values)
	require.NoError(t, err)

	return c
}

func encode(t *testing.T, c *csr.Csr[float64], codec csr.Codec) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, csr.Write(&buf, c, csr.WithCodec(codec)))

	return buf.Bytes()
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()
	for _, codec := range []csr.Codec{csr.CodecNone, csr.CodecLZ4, csr.CodecZstd} {
		t.Run(codec.String(), func(t *testing.T) {
			t.Parallel()
			c := exampleCsr(t)
			back, err := csr.Read[float64](bytes.NewReader(encode(t, c, codec)), alpha, beta, gamma)
			require.NoError(t, err)
			require.Equal(t, c.Coalesc(), back.Coalesc())
			require.Equal(t, c.Idx(), back.Idx())
			require.Equal(t, c.Values(), back.Values())

			b := banded(t)
			raw := encode(t, b, codec)
			h, err := csr.Inspect(bytes.NewReader(raw))
			require.NoError(t, err)
			require.Equal(t, codec, h.Codec)
			if codec == csr.CodecNone {
				require.Equal(t, h.RawLen, h.StoredLen)
			} else {
				require.Less(t, h.StoredLen, h.RawLen)
			}
			back, err = csr.Read[float64](bytes.NewReader(raw), b.Head(), b.Tails()...)
			require.NoError(t, err)
			require.Equal(t, b.Values(), back.Values())
			require.Equal(t, b.Idx(), back.Idx())
		})
	}
}

func TestInspectHeader(t *testing.T) {
	t.Parallel()
	h, err := csr.Inspect(bytes.NewReader(encode(t, exampleCsr(t), csr.CodecNone)))
	require.NoError(t, err)
	require.Equal(t, csr.CodecNone, h.Codec)
	require.Equal(t, 3, h.HeadSize)
	require.Equal(t, []int{3, 3}, h.TailExtents)
	require.Equal(t, 9, h.NNZ)
	require.Equal(t, 2*4+4*8+2*9*4+9*8, h.RawLen)
	require.Equal(t, h.RawLen, h.StoredLen)
}

func TestReadRejectsCorruptInput(t *testing.T) {
	t.Parallel()
	good := encode(t, exampleCsr(t), csr.CodecNone)
	mutate := func(f func(b []byte) []byte) []byte {
		return f(bytes.Clone(good))
	}
	cases := map[string][]byte{
		"empty":     nil,
		"magic":     mutate(func(b []byte) []byte { b[0] = 'X'; return b }),
		"codec":     mutate(func(b []byte) []byte { b[6] = 9; return b }),
		"checksum":  mutate(func(b []byte) []byte { b[len(b)-1] ^= 0xff; return b }),
		"truncated": good[:len(good)-3],
		"header":    good[:10],
		"nnz":       mutate(func(b []byte) []byte { b[15]++; return b }),
	}
	for name, data := range cases {
		_, err := csr.Read[float64](bytes.NewReader(data), alpha, beta, gamma)
		require.ErrorIs(t, err, csr.ErrCorrupt, name)
		_, err = csr.Inspect(bytes.NewReader(data))
		require.ErrorIs(t, err, csr.ErrCorrupt, name)
	}

	packed := encode(t, banded(t), csr.CodecZstd)
	packed[len(packed)/2] ^= 0x5a
	_, err := csr.Inspect(bytes.NewReader(packed))
	require.ErrorIs(t, err, csr.ErrCorrupt)
}

func TestReadLayoutMismatch(t *testing.T) {
	t.Parallel()
	data := encode(t, exampleCsr(t), csr.CodecNone)
	_, err := csr.Read[float64](bytes.NewReader(data), alpha, beta)
	require.ErrorIs(t, err, tensor.ErrIndexMismatch)
	_, err = csr.Read[float64](bytes.NewReader(data), tensor.Upper("alpha", 4), beta, gamma)
	require.ErrorIs(t, err, tensor.ErrIndexMismatch)
	_, err = csr.Read[float64](bytes.NewReader(data), alpha, beta, tensor.Lower("gamma", 4))
	require.ErrorIs(t, err, tensor.ErrIndexMismatch)
}

func TestParseCodec(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]csr.Codec{"": csr.CodecNone, "none": csr.CodecNone, "LZ4": csr.CodecLZ4, " zstd ": csr.CodecZstd} {
		got, err := csr.ParseCodec(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := csr.ParseCodec("snappy")
	require.ErrorIs(t, err, csr.ErrCorrupt)
	require.Equal(t, "codec(7)", csr.Codec(7).String())
}

func TestWriteLogsBlockAtDebug(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := tensor.NewJSONLogger(&buf, slog.LevelDebug)
	require.NoError(t, csr.Write(&bytes.Buffer{}, exampleCsr(t), csr.WithLogger(log), csr.WithCodec(csr.CodecLZ4)))
	require.Contains(t, buf.String(), `"msg":"csr block"`)
	require.Contains(t, buf.String(), `"codec":"lz4"`)
}
