// SPDX-License-Identifier: MIT

// Package csr - binary codec.
//
// Format (little-endian):
//
//	header   magic "LVCSR1" | u8 codec | u32 headSize | u32 tailCount |
//	         u32 nnz | u32 crc32(payload)
//	block    u32 rawLen | u32 compLen | compLen bytes (rawLen when compLen = 0)
//	payload  u32 tail extent × tailCount |
//	         u64 coalesc × (headSize+1) |
//	         u32 tail coordinate × nnz, per tail |
//	         u64 float64 bits × nnz
//
// A compressed block is only kept when it is at most 90% of the raw size.

package csr

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/exp/constraints"
)

// Codec selects the block compression of a serialized CSR.
type Codec uint8

const (
	// CodecNone stores the payload raw.
	CodecNone Codec = 0
	// CodecLZ4 uses LZ4 block compression (fast).
	CodecLZ4 Codec = 1
	// CodecZstd uses Zstandard (better ratio).
	CodecZstd Codec = 2
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecLZ4:
		return "lz4"
	case CodecZstd:
		return "zstd"
	default:
		return fmt.Sprintf("codec(%d)", uint8(c))
	}
}

// ParseCodec maps "none", "lz4" or "zstd" (any case) to a Codec.
func ParseCodec(s string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CodecNone, nil
	case "lz4":
		return CodecLZ4, nil
	case "zstd":
		return CodecZstd, nil
	}

	return 0, csrErrorf("ParseCodec", fmt.Errorf("unknown codec %q: %w", s, ErrCorrupt))
}

const (
	magic           = "LVCSR1"
	headerSize      = len(magic) + 1 + 4*4
	blockHeaderSize = 8
	keepRatio       = 0.9

	// maxBlock and maxTails bound what Read accepts from a header.
	maxBlock = 1 << 31
	maxTails = 1 << 10
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))

	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)

	return dec
}

// compress returns the compressed form of data, or nil when the codec does
// not shrink it below keepRatio.
func compress(data []byte, codec Codec) ([]byte, error) {
	var out []byte
	switch codec {
	case CodecNone:
		return nil, nil
	case CodecLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		out = buf[:n]
	case CodecZstd:
		enc := getZstdEncoder()
		out = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, fmt.Errorf("unknown codec %d: %w", codec, ErrCorrupt)
	}
	if len(out) == 0 || float64(len(out)) > float64(len(data))*keepRatio {
		return nil, nil
	}

	return out, nil
}

func decompress(data []byte, rawLen int, codec Codec) ([]byte, error) {
	out := make([]byte, rawLen)
	switch codec {
	case CodecLZ4:
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, fmt.Errorf("lz4: %v: %w", err, ErrCorrupt)
		}
		out = out[:n]
	case CodecZstd:
		dec := getZstdDecoder()
		decoded, err := dec.DecodeAll(data, out[:0])
		zstdDecoderPool.Put(dec)
		if err != nil {
			return nil, fmt.Errorf("zstd: %v: %w", err, ErrCorrupt)
		}
		out = decoded
	default:
		return nil, fmt.Errorf("compressed block with codec %s: %w", codec, ErrCorrupt)
	}
	if len(out) != rawLen {
		return nil, fmt.Errorf("decompressed %d bytes, want %d: %w", len(out), rawLen, ErrCorrupt)
	}

	return out, nil
}

// Header describes a serialized CSR.
type Header struct {
	Codec       Codec
	HeadSize    int
	TailExtents []int
	NNZ         int
	Checksum    uint32
	RawLen      int
	StoredLen   int // bytes on disk for the block body; equals RawLen when raw
}

func payloadLen(headSize, tails, nnz int) int {
	return 4*tails + 8*(headSize+1) + 4*tails*nnz + 8*nnz
}

// Write serializes c with the codec of WithCodec.
//
// Errors:
//   - ErrCorrupt for an unknown codec; writer errors are returned wrapped.
func Write[T constraints.Float](w io.Writer, c *Csr[T], opts ...Option) error {
	o := gatherOptions(opts...)
	payload := make([]byte, 0, payloadLen(c.HeadSize(), len(c.tails), c.NNZ()))
	for _, n := range c.tails {
		payload = binary.LittleEndian.AppendUint32(payload, uint32(n.Extent))
	}
	for _, v := range c.coalesc {
		payload = binary.LittleEndian.AppendUint64(payload, uint64(v))
	}
	for _, col := range c.idx {
		for _, v := range col {
			payload = binary.LittleEndian.AppendUint32(payload, uint32(v))
		}
	}
	for _, v := range c.values {
		payload = binary.LittleEndian.AppendUint64(payload, math.Float64bits(float64(v)))
	}

	body, err := compress(payload, o.codec)
	if err != nil {
		return csrErrorf("Write", err)
	}
	stored := len(payload)
	if body != nil {
		stored = len(body)
	}
	o.logger.DebugContext(o.ctx, "csr block", "codec", o.codec.String(), "raw", len(payload), "stored", stored)

	buf := make([]byte, 0, headerSize+blockHeaderSize)
	buf = append(buf, magic...)
	buf = append(buf, byte(o.codec))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.HeadSize()))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(c.tails)))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.NNZ()))
	buf = binary.LittleEndian.AppendUint32(buf, crc32.ChecksumIEEE(payload))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(payload)))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(body)))
	if body == nil {
		body = payload
	}
	if _, err = w.Write(buf); err != nil {
		return csrErrorf("Write", err)
	}
	if _, err = w.Write(body); err != nil {
		return csrErrorf("Write", err)
	}

	return nil
}

// readBlock reads the header and the decoded, checksum-verified payload.
func readBlock(r io.Reader) (Header, []byte, error) {
	var h Header
	raw := make([]byte, headerSize+blockHeaderSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return h, nil, fmt.Errorf("header: %v: %w", err, ErrCorrupt)
	}
	if string(raw[:len(magic)]) != magic {
		return h, nil, fmt.Errorf("bad magic %q: %w", raw[:len(magic)], ErrCorrupt)
	}
	p := raw[len(magic):]
	h.Codec = Codec(p[0])
	if h.Codec > CodecZstd {
		return h, nil, fmt.Errorf("codec %d: %w", p[0], ErrCorrupt)
	}
	h.HeadSize = int(binary.LittleEndian.Uint32(p[1:]))
	tails := int(binary.LittleEndian.Uint32(p[5:]))
	h.NNZ = int(binary.LittleEndian.Uint32(p[9:]))
	h.Checksum = binary.LittleEndian.Uint32(p[13:])
	h.RawLen = int(binary.LittleEndian.Uint32(p[17:]))
	compLen := int(binary.LittleEndian.Uint32(p[21:]))
	if tails > maxTails {
		return h, nil, fmt.Errorf("%d tails: %w", tails, ErrCorrupt)
	}
	if h.RawLen != payloadLen(h.HeadSize, tails, h.NNZ) || h.RawLen > maxBlock || compLen > maxBlock {
		return h, nil, fmt.Errorf("block of %d bytes for %d slots, %d tails, %d nonzeros: %w", h.RawLen, h.HeadSize, tails, h.NNZ, ErrCorrupt)
	}
	h.StoredLen = h.RawLen
	if compLen > 0 {
		h.StoredLen = compLen
	}
	body := make([]byte, h.StoredLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return h, nil, fmt.Errorf("block: %v: %w", err, ErrCorrupt)
	}
	payload := body
	if compLen > 0 {
		var err error
		if payload, err = decompress(body, h.RawLen, h.Codec); err != nil {
			return h, nil, err
		}
	}
	if crc32.ChecksumIEEE(payload) != h.Checksum {
		return h, nil, fmt.Errorf("checksum mismatch: %w", ErrCorrupt)
	}
	h.TailExtents = make([]int, tails)
	for k := range h.TailExtents {
		h.TailExtents[k] = int(binary.LittleEndian.Uint32(payload[4*k:]))
	}

	return h, payload[4*tails:], nil
}

// Inspect decodes and verifies a serialized CSR without binding it to a
// layout.
//
// Errors:
//   - ErrCorrupt.
func Inspect(r io.Reader) (Header, error) {
	h, _, err := readBlock(r)
	if err != nil {
		return h, csrErrorf("Inspect", err)
	}

	return h, nil
}

// Read decodes a CSR written by Write over head ⊗ tails. The layout must
// match the serialized head size and tail extents.
//
// Errors:
//   - ErrCorrupt for undecodable input.
//   - tensor.ErrIndexMismatch when the layout differs.
//   - ErrInvalidLayout when the decoded arrays break the CSR invariants.
func Read[T constraints.Float](r io.Reader, head tensor.Kind, tails ...tensor.Natural) (*Csr[T], error) {
	h, p, err := readBlock(r)
	if err != nil {
		return nil, csrErrorf("Read", err)
	}
	if head == nil || h.HeadSize != head.Size() || len(h.TailExtents) != len(tails) {
		return nil, csrErrorf("Read", fmt.Errorf("serialized %d slots, %d tails: %w", h.HeadSize, len(h.TailExtents), tensor.ErrIndexMismatch))
	}
	for k, n := range tails {
		if n.Extent != h.TailExtents[k] {
			return nil, csrErrorf("Read", fmt.Errorf("tail %s, serialized extent %d: %w", n, h.TailExtents[k], tensor.ErrIndexMismatch))
		}
	}

	rd := bytes.NewReader(p)
	coalesc := make([]int, h.HeadSize+1)
	for i := range coalesc {
		coalesc[i] = int(readU64(rd))
	}
	idx := make([][]int, len(tails))
	for k := range idx {
		idx[k] = make([]int, h.NNZ)
		for j := range idx[k] {
			idx[k][j] = int(readU32(rd))
		}
	}
	values := make([]T, h.NNZ)
	for j := range values {
		values[j] = T(math.Float64frombits(readU64(rd)))
	}

	return New(head, tails, coalesc, idx, values)
}

// readU32 and readU64 read from a payload whose length was checked against
// payloadLen.
func readU32(r *bytes.Reader) uint32 {
	var b [4]byte
	_, _ = r.Read(b[:])

	return binary.LittleEndian.Uint32(b[:])
}

func readU64(r *bytes.Reader) uint64 {
	var b [8]byte
	_, _ = r.Read(b[:])

	return binary.LittleEndian.Uint64(b[:])
}
