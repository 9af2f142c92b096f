// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ik5/ctagsynth/source"
)

// Retry defaults for transient transport errors.
const (
	DefaultMaxRetries = 3
	DefaultBackoff    = 2 * time.Millisecond
)

const bytesPerSample = 2

// sourceRef boxes the interface so it fits an atomic.Pointer.
type sourceRef struct {
	src source.SampleSource
}

// Engine renders blocks from the active source into a Transport.
//
// SetSource, Source, State and BlocksRendered are safe from any goroutine.
// Configure, RenderOneBlock and Run belong to the goroutine driving the
// engine.
type Engine struct {
	id        uuid.UUID
	logger    *slog.Logger
	transport Transport

	maxRetries int
	backoff    time.Duration
	sleep      func(time.Duration)

	state  atomic.Int32
	active atomic.Pointer[sourceRef]
	blocks atomic.Uint64

	desc  OutputDescriptor
	block []int16
}

type Option func(*Engine)

// WithLogger sets the logger; the engine adds its own attributes.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRetry sets how many times a transient transport error is retried per
// block and the pause between attempts.
func WithRetry(maxRetries int, backoff time.Duration) Option {
	return func(e *Engine) {
		e.maxRetries = max(maxRetries, 0)
		e.backoff = max(backoff, 0)
	}
}

// New returns an Uninitialized engine streaming into t.
func New(t Transport, opts ...Option) *Engine {
	e := &Engine{
		id:         uuid.New(),
		logger:     slog.Default(),
		transport:  t,
		maxRetries: DefaultMaxRetries,
		backoff:    DefaultBackoff,
		sleep:      time.Sleep,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.logger = e.logger.With("component", "engine", "engine uuid", e.id)

	return e
}

func (e *Engine) ID() uuid.UUID { return e.id }

func (e *Engine) State() State { return State(e.state.Load()) }

// Descriptor returns the descriptor of the last successful Configure.
func (e *Engine) Descriptor() OutputDescriptor { return e.desc }

// Configure validates desc, configures the transport and allocates the
// block buffer. On failure the engine is left Uninitialized.
func (e *Engine) Configure(desc OutputDescriptor) error {
	if err := desc.Validate(); err != nil {
		e.state.Store(int32(Uninitialized))
		return fmt.Errorf("%w: %w", ErrConfigure, err)
	}

	if err := e.transport.Configure(desc); err != nil {
		e.state.Store(int32(Uninitialized))
		e.logger.Error("could not configure output transport", "err", err)
		return fmt.Errorf("%w: %w", ErrConfigure, err)
	}

	if cap(e.block) < desc.BlockSamples() {
		e.block = make([]int16, desc.BlockSamples())
	}
	e.block = e.block[:desc.BlockSamples()]
	clear(e.block)
	e.desc = desc

	e.state.Store(int32(Configured))
	e.logger.Debug(
		"output configured",
		"sampleRate", desc.SampleRate,
		"bitsPerSample", desc.BitsPerSample,
		"channels", desc.Channels,
		"bufferCount", desc.BufferCount,
		"bufferFrames", desc.BufferFrames,
		"blockFrames", desc.BlockFrames,
	)

	return nil
}

// SetSource makes src the active source. A nil src renders silence.
func (e *Engine) SetSource(src source.SampleSource) {
	if src == nil {
		e.active.Store(nil)
		return
	}
	e.active.Store(&sourceRef{src: src})
}

// Source returns the active source, or nil.
func (e *Engine) Source() source.SampleSource {
	if ref := e.active.Load(); ref != nil {
		return ref.src
	}

	return nil
}

// Block returns the most recently rendered block. The slice is reused by
// the next RenderOneBlock.
func (e *Engine) Block() []int16 { return e.block }

func (e *Engine) BlocksRendered() uint64 { return e.blocks.Load() }

// RenderOneBlock renders BlockFrames frames and hands them to the
// transport, blocking until the transport accepts them.
func (e *Engine) RenderOneBlock() error {
	switch e.State() {
	case Uninitialized:
		return ErrNotConfigured
	case Faulted:
		return ErrFaulted
	}

	if e.state.CompareAndSwap(int32(Configured), int32(Streaming)) {
		e.logger.Info("streaming started")
	}

	e.render()

	if err := e.transmit(); err != nil {
		e.state.Store(int32(Faulted))
		e.logger.Error("output transport failed, streaming stopped", "err", err, "blocks", e.blocks.Load())
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	e.blocks.Add(1)

	return nil
}

// Run renders blocks until ctx is done or the transport fails. Cancellation
// is observed between blocks and returns nil.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			e.logger.Debug("run stopped", "blocks", e.blocks.Load())
			return nil
		default:
		}

		if err := e.RenderOneBlock(); err != nil {
			return err
		}
	}
}

func (e *Engine) render() {
	for i := 0; i < len(e.block); i += 2 {
		var s int16
		if ref := e.active.Load(); ref != nil {
			s = ref.src.NextSample()
		}
		e.block[i] = s
		e.block[i+1] = s
	}
}

// transmit writes the block, resending the unaccepted tail after short
// writes and retrying transient errors within the budget.
func (e *Engine) transmit() error {
	pending := e.block
	attempts := 0

	for len(pending) > 0 {
		n, err := e.transport.WriteFrames(pending)
		if n%bytesPerSample != 0 {
			return fmt.Errorf("%w: %d bytes", ErrPartialSample, n)
		}
		accepted := min(max(n, 0)/bytesPerSample, len(pending))
		pending = pending[accepted:]

		if err == nil {
			if accepted > 0 || len(pending) == 0 {
				continue
			}
			err = fmt.Errorf("%w: %w", ErrTransient, io.ErrShortWrite)
		}

		if !IsTransient(err) {
			return err
		}

		attempts++
		if attempts > e.maxRetries {
			return fmt.Errorf("gave up after %d retries: %w", e.maxRetries, err)
		}

		e.logger.Warn(
			"transient output error, retrying block",
			"err", err,
			"attempt", attempts,
			"pendingSamples", len(pending),
		)
		e.sleep(e.backoff)
	}

	return nil
}
