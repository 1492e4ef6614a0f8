// SPDX-License-Identifier: MIT

// Package tensor: functional configuration for the algebra kernels.
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - gatherOptions, the single place defaults are resolved.
package tensor

import "context"

const (
	// DefaultWorkers runs kernels on the calling goroutine.
	DefaultWorkers = 1

	// DefaultChunk is the number of output components handed to one worker
	// task when Workers > 1.
	DefaultChunk = 64
)

const (
	panicWorkersInvalid = "tensor: WithWorkers: n must be >= 1"
	panicChunkInvalid   = "tensor: WithChunk: n must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options is the resolved configuration of one call.
type Options struct {
	workers int
	chunk   int
	logger  *Logger
	ctx     context.Context
}

// Workers reports the resolved worker count.
func (o Options) Workers() int { return o.workers }

// Chunk reports the resolved chunk size.
func (o Options) Chunk() int { return o.chunk }

// Logger reports the resolved logger (never nil).
func (o Options) Logger() *Logger { return o.logger }

// Context reports the resolved context (never nil).
func (o Options) Context() context.Context { return o.ctx }

// WithWorkers fans the computation of independent output components out to
// n goroutines. Accumulation into one output component is never split.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithChunk sets how many output components one worker task computes.
func WithChunk(n int) Option {
	if n < 1 {
		panic(panicChunkInvalid)
	}

	return func(o *Options) { o.chunk = n }
}

// WithLogger routes kernel diagnostics to l.
func WithLogger(l *Logger) Option {
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
		logger:  NoopLogger(),
		ctx:     context.Background(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
