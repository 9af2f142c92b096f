// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/ctagsynth/utils"
)

// Convert16 drains src through a Resampler when rate differs from the source
// rate and through a MonoMixer when channels is 1, and returns the result as
// interleaved 16-bit PCM. channels must be 1 or the source channel count.
func Convert16(src Stream, rate, channels, bufSize int) ([]int16, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}
	if channels != 1 && channels != src.Channels() {
		return nil, fmt.Errorf("%w: %d from %d", ErrChannelCount, channels, src.Channels())
	}

	stream := src
	if rate != src.SampleRate() {
		stream = NewResampler(stream, rate)
	}
	if channels == 1 && stream.Channels() != 1 {
		stream = NewMonoMixer(stream)
	}

	bufSize -= bufSize % stream.Channels()
	if bufSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBufSize, bufSize)
	}

	var (
		out []int16
		buf = make([]float32, bufSize)
	)
	for {
		n, err := stream.ReadSamples(buf)
		for _, v := range buf[:n] {
			out = append(out, utils.Float32ToInt16(v))
		}
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("convert: %w", err)
		}
	}
}
