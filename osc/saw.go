// SPDX-License-Identifier: EPL-2.0

package osc

import "github.com/ik5/ctagsynth/utils"

// Saw is a two-segment ramp oscillator. It rises from -1 to +1 over the
// first skew fraction of the cycle and falls back to -1 over the rest.
// Skew near 0 gives a falling saw, near 1 a rising saw, 0.5 a triangle.
type Saw struct {
	sampleRate float64

	frequency      param
	phaseIncrement param
	amplitude      param
	skew           param

	phase float64
}

// NewSaw returns a saw oscillator at sampleRate Hz (44100 when sampleRate <= 0).
func NewSaw(sampleRate float64) *Saw {
	s := &Saw{sampleRate: sampleRateOrDefault(sampleRate)}
	s.SetFrequency(DefaultFrequency)
	s.SetAmplitude(DefaultAmplitude)
	s.SetSkew(DefaultSkew)

	return s
}

func (s *Saw) SampleRate() float64 { return s.sampleRate }

func (s *Saw) SetFrequency(freq float64) {
	s.frequency.Store(freq)
	s.phaseIncrement.Store(increment(freq, s.sampleRate))
}

func (s *Saw) Frequency() float64      { return s.frequency.Load() }
func (s *Saw) PhaseIncrement() float64 { return s.phaseIncrement.Load() }

func (s *Saw) SetAmplitude(amp float64) { s.amplitude.Store(clamp(amp, 0, 1)) }
func (s *Saw) Amplitude() float64       { return s.amplitude.Load() }

// SetSkew sets the peak position within the cycle, clamped to [MinSkew, MaxSkew].
func (s *Saw) SetSkew(skew float64) { s.skew.Store(clamp(skew, MinSkew, MaxSkew)) }

func (s *Saw) Skew() float64 { return s.skew.Load() }

func (s *Saw) Phase() float64 { return s.phase }

func (s *Saw) NextSample() int16 {
	s.phase = wrapPhase(s.phase + s.phaseIncrement.Load())

	norm := s.phase / twoPi
	skew := s.skew.Load()

	var out float64
	if norm < skew {
		out = -1 + 2*norm/skew
	} else {
		out = 1 - 2*(norm-skew)/(1-skew)
	}

	return utils.Quantize(out * s.amplitude.Load())
}
