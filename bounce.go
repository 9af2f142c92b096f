// SPDX-License-Identifier: EPL-2.0

package ctagsynth

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ik5/ctagsynth/audio"
	"github.com/ik5/ctagsynth/engine"
	"github.com/ik5/ctagsynth/sink"
	"github.com/ik5/ctagsynth/source"
)

// convertBufSize is the float scratch size used when converting a bounce.
const convertBufSize = 4096

// BounceOptions controls an offline render.
type BounceOptions struct {
	// Duration of audio to render.
	Duration time.Duration
	// SampleRate of the written file. Zero keeps the engine rate.
	SampleRate int
	// Channels of the written file, 1 or 2. Zero means 2.
	Channels int
	// Descriptor for the engine. The zero value means
	// engine.DefaultOutputDescriptor.
	Descriptor engine.OutputDescriptor
	// Logger for the engine. Nil means slog.Default.
	Logger *slog.Logger
}

func (o BounceOptions) withDefaults() BounceOptions {
	if o.Descriptor == (engine.OutputDescriptor{}) {
		o.Descriptor = engine.DefaultOutputDescriptor()
	}
	if o.SampleRate == 0 {
		o.SampleRate = o.Descriptor.SampleRate
	}
	if o.Channels == 0 {
		o.Channels = 2
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

// Bounce renders src through an engine and writes the result to w as a
// 16-bit PCM WAV file.
//
// The engine runs at the descriptor rate into memory. The capture is then
// resampled when SampleRate differs and folded to mono when Channels is 1.
func Bounce(src source.SampleSource, opts BounceOptions, w io.WriteSeeker) error {
	opts = opts.withDefaults()
	desc := opts.Descriptor

	if opts.Duration <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, opts.Duration)
	}
	if opts.Channels != 1 && opts.Channels != 2 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, opts.Channels)
	}

	var capture sink.Buffer
	eng := engine.New(&capture, engine.WithLogger(opts.Logger))
	if err := eng.Configure(desc); err != nil {
		return fmt.Errorf("bounce: %w", err)
	}
	eng.SetSource(src)

	frames := durationFrames(opts.Duration, desc.SampleRate)
	blocks := (frames + desc.BlockFrames - 1) / desc.BlockFrames
	for range blocks {
		if err := eng.RenderOneBlock(); err != nil {
			return fmt.Errorf("bounce: %w", err)
		}
	}

	samples := capture.Samples()[:frames*desc.Channels]
	pcm, err := audio.Convert16(
		audio.NewPCM16Stream(samples, desc.SampleRate, desc.Channels),
		opts.SampleRate, opts.Channels, convertBufSize,
	)
	if err != nil {
		return fmt.Errorf("bounce: %w", err)
	}

	out := sink.NewWAV(w)
	err = out.Configure(engine.OutputDescriptor{
		SampleRate:    opts.SampleRate,
		BitsPerSample: 16,
		Channels:      opts.Channels,
		BlockFrames:   desc.BlockFrames,
	})
	if err != nil {
		return fmt.Errorf("bounce: %w", err)
	}
	if _, err := out.WriteFrames(pcm); err != nil {
		out.Close()
		return fmt.Errorf("bounce: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("bounce: %w", err)
	}

	opts.Logger.Info("bounce written",
		"engine uuid", eng.ID(),
		"frames", len(pcm)/opts.Channels,
		"sample rate", opts.SampleRate,
		"channels", opts.Channels,
	)

	return nil
}

// durationFrames converts d to a frame count at rate, at least one frame.
// Whole seconds and the remainder are scaled apart so long durations do not
// overflow.
func durationFrames(d time.Duration, rate int) int {
	whole := int(d/time.Second) * rate
	frac := int(d % time.Second * time.Duration(rate) / time.Second)

	return max(whole+frac, 1)
}
