// SPDX-License-Identifier: MIT

package csr

import (
	"context"

	"github.com/katalvlaran/lvtensor/tensor"
)

const (
	// DefaultWorkers runs kernels on the calling goroutine.
	DefaultWorkers = 1

	// DefaultChunk is the number of head slots one worker task handles.
	DefaultChunk = 32

	// DefaultCodec stores blocks uncompressed.
	DefaultCodec = CodecNone
)

const (
	panicWorkersInvalid = "csr: WithWorkers: n must be >= 1"
	panicChunkInvalid   = "csr: WithChunk: n must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options is the resolved configuration of one call.
type Options struct {
	workers int
	chunk   int
	codec   Codec
	logger  *tensor.Logger
	ctx     context.Context
}

// Workers reports the resolved worker count.
func (o Options) Workers() int { return o.workers }

// Chunk reports the resolved chunk size.
func (o Options) Chunk() int { return o.chunk }

// Codec reports the resolved block codec.
func (o Options) Codec() Codec { return o.codec }

// WithWorkers spreads independent head slots over n goroutines.
// Accumulation into one output component is never split.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithChunk sets how many head slots one worker task processes.
func WithChunk(n int) Option {
	if n < 1 {
		panic(panicChunkInvalid)
	}

	return func(o *Options) { o.chunk = n }
}

// WithCodec selects the block compression used by Write.
func WithCodec(c Codec) Option {
	return func(o *Options) { o.codec = c }
}

// WithLogger routes kernel and codec diagnostics to l.
func WithLogger(l *tensor.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithContext attaches ctx to log records and stops parallel kernels early
// when ctx is cancelled.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		chunk:   DefaultChunk,
		codec:   DefaultCodec,
		logger:  tensor.NoopLogger(),
		ctx:     context.Background(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
