// SPDX-License-Identifier: EPL-2.0

package source

// SampleSource produces the next signed 16-bit sample of a sound generator.
type SampleSource interface {
	NextSample() int16
}

// Func adapts an ordinary function into a SampleSource.
type Func func() int16

func (f Func) NextSample() int16 { return f() }

// Silence is a SampleSource that always produces 0.
type Silence struct{}

func (Silence) NextSample() int16 { return 0 }
