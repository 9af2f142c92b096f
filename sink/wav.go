// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"fmt"
	"io"
	"sync"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/ctagsynth/engine"
)

const wavFormatPCM = 1

// WAV streams 16-bit PCM into a WAV container. The header sizes are written
// by Close, so w must be seekable.
type WAV struct {
	mu      sync.Mutex
	w       io.WriteSeeker
	enc     *wav.Encoder
	buf     *goaudio.IntBuffer
	samples int
	closed  bool
}

// NewWAV returns a WAV transport writing to w.
func NewWAV(w io.WriteSeeker) *WAV {
	return &WAV{w: w}
}

// Configure implements engine.Transport. Only the sample rate, bit depth and
// channel count of desc are used, so mono files can be written too.
func (s *WAV) Configure(desc engine.OutputDescriptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if desc.BitsPerSample != 16 || desc.Channels <= 0 || desc.SampleRate <= 0 {
		return fmt.Errorf("%w: %d Hz, %d bit, %d channels",
			ErrUnsupportedFormat, desc.SampleRate, desc.BitsPerSample, desc.Channels)
	}
	if s.enc != nil {
		fmtNow := s.buf.Format
		if fmtNow.SampleRate != desc.SampleRate || fmtNow.NumChannels != desc.Channels {
			return fmt.Errorf("%w: WAV format is fixed once configured", ErrUnsupportedFormat)
		}
		return nil
	}

	s.enc = wav.NewEncoder(s.w, desc.SampleRate, desc.BitsPerSample, desc.Channels, wavFormatPCM)
	s.buf = &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: desc.Channels,
			SampleRate:  desc.SampleRate,
		},
		SourceBitDepth: desc.BitsPerSample,
		Data:           make([]int, 0, max(desc.BlockSamples(), desc.Channels)),
	}

	return nil
}

// WriteFrames implements engine.Transport.
func (s *WAV) WriteFrames(samples []int16) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}
	if s.enc == nil {
		return 0, ErrNotConfigured
	}

	s.buf.Data = s.buf.Data[:0]
	for _, v := range samples {
		s.buf.Data = append(s.buf.Data, int(v))
	}
	if err := s.enc.Write(s.buf); err != nil {
		return 0, fmt.Errorf("wav write: %w", err)
	}
	s.samples += len(samples)

	return len(samples) * 2, nil
}

// Samples returns the number of samples written so far.
func (s *WAV) Samples() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.samples
}

// Close finalizes the WAV header. It does not close the underlying writer.
func (s *WAV) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.enc == nil {
		return nil
	}
	if s.samples == 0 {
		// The encoder writes its header on the first buffer.
		s.buf.Data = s.buf.Data[:0]
		if err := s.enc.Write(s.buf); err != nil {
			return fmt.Errorf("wav header: %w", err)
		}
	}
	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("wav close: %w", err)
	}

	return nil
}
