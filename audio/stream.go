// SPDX-License-Identifier: EPL-2.0

package audio

// Stream is a pull-based source of interleaved float PCM.
type Stream interface {
	// SampleRate in Hz.
	SampleRate() int
	// Channels per frame.
	Channels() int
	// ReadSamples fills dst with interleaved samples in [-1, 1] and returns
	// how many values were written. io.EOF marks the end of the stream and
	// may accompany the final samples.
	ReadSamples(dst []float32) (int, error)
}
