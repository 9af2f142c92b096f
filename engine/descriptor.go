// SPDX-License-Identifier: EPL-2.0

package engine

import "fmt"

// Reference sizing of the board's I2S output.
const (
	DefaultSampleRate    = 44100
	DefaultBitsPerSample = 16
	DefaultChannels      = 2
	DefaultBufferCount   = 8
	DefaultBufferFrames  = 256
	DefaultBlockFrames   = 256
)

// Pins routes the output peripheral. -1 leaves a pin unchanged.
type Pins struct {
	MasterClock int
	BitClock    int
	WordSelect  int
	DataOut     int
}

// DefaultPins is the I2S routing of the reference board.
func DefaultPins() Pins {
	return Pins{
		MasterClock: 39,
		BitClock:    45,
		WordSelect:  1,
		DataOut:     2,
	}
}

// OutputDescriptor is the clock, buffering and routing configuration handed
// to the transport.
type OutputDescriptor struct {
	SampleRate    int
	BitsPerSample int
	Channels      int

	// BufferCount buffers of BufferFrames frames decouple rendering from
	// transmission inside the transport.
	BufferCount  int
	BufferFrames int

	// BlockFrames is the number of frames rendered per RenderOneBlock.
	BlockFrames int

	Pins Pins
}

func DefaultOutputDescriptor() OutputDescriptor {
	return OutputDescriptor{
		SampleRate:    DefaultSampleRate,
		BitsPerSample: DefaultBitsPerSample,
		Channels:      DefaultChannels,
		BufferCount:   DefaultBufferCount,
		BufferFrames:  DefaultBufferFrames,
		BlockFrames:   DefaultBlockFrames,
		Pins:          DefaultPins(),
	}
}

// BlockSamples is the number of int16 values in one block.
func (d OutputDescriptor) BlockSamples() int { return d.BlockFrames * d.Channels }

// BlockBytes is the size of one block on the wire.
func (d OutputDescriptor) BlockBytes() int { return d.BlockSamples() * d.BitsPerSample / 8 }

// Validate checks that d describes 16-bit stereo output with usable sizes.
func (d OutputDescriptor) Validate() error {
	switch {
	case d.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidDescriptor, d.SampleRate)
	case d.BitsPerSample != 16:
		return fmt.Errorf("%w: %d bits per sample, only 16 supported", ErrInvalidDescriptor, d.BitsPerSample)
	case d.Channels != 2:
		return fmt.Errorf("%w: %d channels, only stereo supported", ErrInvalidDescriptor, d.Channels)
	case d.BufferCount <= 0 || d.BufferFrames <= 0:
		return fmt.Errorf("%w: %d buffers of %d frames", ErrInvalidDescriptor, d.BufferCount, d.BufferFrames)
	case d.BlockFrames <= 0:
		return fmt.Errorf("%w: block of %d frames", ErrInvalidDescriptor, d.BlockFrames)
	}

	return nil
}
