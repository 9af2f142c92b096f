// SPDX-License-Identifier: EPL-2.0

package source

import (
	"io"

	"github.com/ik5/ctagsynth/utils"
)

// Stream exposes a SampleSource as a mono audio.Stream of a fixed length.
type Stream struct {
	src        SampleSource
	sampleRate int
	remaining  int
}

// NewStream reads total samples from src, which runs at sampleRate Hz.
func NewStream(src SampleSource, sampleRate, total int) *Stream {
	return &Stream{
		src:        src,
		sampleRate: sampleRate,
		remaining:  total,
	}
}

func (s *Stream) SampleRate() int { return s.sampleRate }
func (s *Stream) Channels() int   { return 1 }

// ReadSamples fills dst with the next samples converted to [-1, 1].
// It returns io.EOF together with the final samples.
func (s *Stream) ReadSamples(dst []float32) (int, error) {
	if s.remaining <= 0 {
		return 0, io.EOF
	}

	n := min(len(dst), s.remaining)
	for i := range n {
		dst[i] = utils.Int16ToFloat32(s.src.NextSample())
	}
	s.remaining -= n

	if s.remaining == 0 {
		return n, io.EOF
	}

	return n, nil
}
