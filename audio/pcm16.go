// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/ctagsynth/utils"
)

// PCM16Stream reads interleaved int16 samples held in memory.
type PCM16Stream struct {
	samples    []int16
	sampleRate int
	channels   int
	pos        int
}

// NewPCM16Stream returns a stream over samples. A trailing partial frame is
// ignored.
func NewPCM16Stream(samples []int16, sampleRate, channels int) *PCM16Stream {
	channels = max(channels, 1)

	return &PCM16Stream{
		samples:    samples[:len(samples)-len(samples)%channels],
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (s *PCM16Stream) SampleRate() int { return s.sampleRate }
func (s *PCM16Stream) Channels() int   { return s.channels }

// ReadSamples implements Stream.
func (s *PCM16Stream) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copyToFloat(dst, s.samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.samples) {
		return n, io.EOF
	}

	return n, nil
}

func copyToFloat(dst []float32, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = utils.Int16ToFloat32(src[i])
	}

	return n
}
