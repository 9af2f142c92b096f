// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package sink

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/ctagsynth/engine"
)

// Oto plays on the host sound device.
//
// Written frames go into a RingBuffer sized to the descriptor's buffer
// count and length, which the oto player drains. WriteFrames blocks while
// the ring is full, pacing the engine at the device rate.
type Oto struct {
	logger *slog.Logger

	mu     sync.Mutex
	ctx    *oto.Context
	player *oto.Player
	ring   *RingBuffer
	desc   engine.OutputDescriptor
	pcm    []byte
	closed bool
}

// NewOto returns an unconfigured host speaker transport.
func NewOto(logger *slog.Logger) *Oto {
	if logger == nil {
		logger = slog.Default()
	}

	return &Oto{logger: logger.With("component", "oto")}
}

// oto allows one context per process.
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoRate int
	otoChan int
	otoErr  error
)

func otoContext(rate, channels int, latency time.Duration) (*oto.Context, error) {
	otoOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   rate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   latency,
		})
		if err != nil {
			otoErr = fmt.Errorf("%w: %w", ErrNoAudioDevice, err)
			return
		}
		<-ready
		otoCtx, otoRate, otoChan = ctx, rate, channels
	})
	if otoErr != nil {
		return nil, otoErr
	}
	if otoRate != rate || otoChan != channels {
		return nil, fmt.Errorf("%w: device already opened at %d Hz %d channels",
			ErrUnsupportedFormat, otoRate, otoChan)
	}

	return otoCtx, nil
}

// Configure implements engine.Transport.
func (o *Oto) Configure(desc engine.OutputDescriptor) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrClosed
	}
	if desc.BitsPerSample != 16 || desc.SampleRate <= 0 || desc.Channels <= 0 {
		return fmt.Errorf("%w: %d Hz, %d bit, %d channels",
			ErrUnsupportedFormat, desc.SampleRate, desc.BitsPerSample, desc.Channels)
	}

	frames := desc.BufferCount * desc.BufferFrames
	latency := time.Duration(frames) * time.Second / time.Duration(desc.SampleRate)

	ctx, err := otoContext(desc.SampleRate, desc.Channels, latency)
	if err != nil {
		return err
	}

	if o.player != nil {
		o.ring.Close()
		if err := o.player.Close(); err != nil {
			o.logger.Warn("closing previous player", "err", err)
		}
	}

	o.ctx = ctx
	o.desc = desc
	o.ring = NewRingBuffer(frames * desc.Channels * 2)
	o.pcm = make([]byte, desc.BlockBytes())
	o.player = ctx.NewPlayer(o.ring)
	o.player.Play()

	o.logger.Info("audio device ready",
		"sample rate", desc.SampleRate,
		"channels", desc.Channels,
		"latency", latency,
	)

	return nil
}

// WriteFrames implements engine.Transport.
func (o *Oto) WriteFrames(samples []int16) (int, error) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return 0, ErrClosed
	}
	if o.ring == nil {
		o.mu.Unlock()
		return 0, ErrNotConfigured
	}
	o.pcm = putPCM16(o.pcm, samples)
	ring, pcm := o.ring, o.pcm
	o.mu.Unlock()

	// Blocks outside o.mu so Close can interrupt it.
	return ring.Write(pcm)
}

// Close stops playback and unblocks a pending WriteFrames.
func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil
	}
	o.closed = true

	if o.ring != nil {
		o.ring.Close()
	}
	if o.player != nil {
		if err := o.player.Close(); err != nil {
			return fmt.Errorf("oto player close: %w", err)
		}
	}

	return nil
}
